package app

import (
	"os"

	"github.com/alecthomas/hcl"
	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
)

const userConfigPath = "~/.shellarg.hcl"

var userConfigSchema = func() string {
	schema, err := hcl.Schema(&UserConfig{})
	if err != nil {
		return ""
	}
	data, err := hcl.MarshalAST(schema)
	if err != nil {
		return ""
	}
	return string(data)
}()

// UserConfig is stored in ~/.shellarg.hcl
type UserConfig struct {
	Shell string `hcl:"shell,optional" help:"Default shell dialect to quote for."`
	Null  bool   `hcl:"null,optional" help:"If true, delimit arguments with NUL instead of newlines by default."`
}

// LoadUserConfig from disk.
func LoadUserConfig() (UserConfig, error) {
	config := UserConfig{}
	data, err := os.ReadFile(kong.ExpandPath(userConfigPath))
	if os.IsNotExist(err) {
		err = hcl.Unmarshal([]byte{}, &config)
		return config, errors.WithStack(err)
	} else if err != nil {
		return config, errors.WithStack(err)
	}
	err = hcl.Unmarshal(data, &config)
	if err != nil {
		return config, errors.WithStack(err)
	}
	return config, nil
}

// UserConfigResolver is a Kong configuration resolver for the shellarg
// user configuration file.
func UserConfigResolver(userConfig UserConfig) kong.Resolver {
	return &userConfigResolver{userConfig}
}

type userConfigResolver struct{ config UserConfig }

func (u *userConfigResolver) Validate(app *kong.Application) error { return nil }
func (u *userConfigResolver) Resolve(context *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
	switch flag.Name {
	case "shell":
		if u.config.Shell != "" {
			return u.config.Shell, nil
		}

	case "null":
		if u.config.Null {
			return true, nil
		}
	}
	return nil, nil
}
