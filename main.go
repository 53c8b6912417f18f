package main

import (
	"github.com/statmigrate/spssr/cmd"
	_ "github.com/statmigrate/spssr/translators/aggregate"
	_ "github.com/statmigrate/spssr/translators/compute"
	_ "github.com/statmigrate/spssr/translators/define"
	_ "github.com/statmigrate/spssr/translators/descriptives"
	_ "github.com/statmigrate/spssr/translators/dorepeat"
	_ "github.com/statmigrate/spssr/translators/filehandle"
	_ "github.com/statmigrate/spssr/translators/filter"
	_ "github.com/statmigrate/spssr/translators/frequencies"
	_ "github.com/statmigrate/spssr/translators/get"
	_ "github.com/statmigrate/spssr/translators/getdata"
	_ "github.com/statmigrate/spssr/translators/matchfiles"
	_ "github.com/statmigrate/spssr/translators/missingvalues"
	_ "github.com/statmigrate/spssr/translators/recode"
	_ "github.com/statmigrate/spssr/translators/renamevariables"
	_ "github.com/statmigrate/spssr/translators/save"
	_ "github.com/statmigrate/spssr/translators/selectif"
	_ "github.com/statmigrate/spssr/translators/sortcases"
	_ "github.com/statmigrate/spssr/translators/valuelabels"
	_ "github.com/statmigrate/spssr/translators/variablelabels"
	_ "github.com/statmigrate/spssr/translators/weight"
)

var version = "v0.3.1"

func main() {
	cmd.Execute(version)
}
