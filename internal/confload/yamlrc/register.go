package yamlrc

import (
	"github.com/oxmigrate/oxmigrate-cli/internal/confload"
)

func init() {
	_ = confload.Global().Register(&Loader{})
}
