package app

import (
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/mattn/go-isatty"
	"github.com/posener/complete"
	"github.com/willabides/kongplete"

	"github.com/shellarg/shellarg/ui"
)

const help = `Shellarg quotes arbitrary text so that it is safe to splice into a shell command line as a single argument.`

// Config for the main shellarg application.
type Config struct {
	Version     string
	LogLevel    ui.Level
	KongOptions []kong.Option
	KongPlugins kong.Plugins
}

// Main runs the shellarg command-line application with the given config.
func Main(config Config) {
	config.LogLevel = ui.AutoLevel(config.LogLevel)
	stderrIsTTY := isatty.IsTerminal(os.Stderr.Fd())
	p := ui.New(config.LogLevel, os.Stderr, stderrIsTTY)

	cmds := &cli{Plugins: config.KongPlugins}

	userConfig, err := LoadUserConfig()
	if err != nil {
		log.Printf("%s: %s", userConfigPath, err)
	}

	shellargHelp := help
	shellargHelp += "\n\nConfiguration format for " + userConfigPath + ":\n"
	shellargHelp += "    " + strings.Join(strings.Split(userConfigSchema, "\n"), "\n    ")

	kongOptions := []kong.Option{
		kong.Resolvers(UserConfigResolver(userConfig)),
		kong.UsageOnError(),
		kong.Description(shellargHelp),
		kong.BindTo(cmds, (*cliInterface)(nil)),
		kong.Bind(userConfig, config),
		kong.Vars{
			"version": config.Version,
		},
		kong.HelpOptions{
			Compact: true,
		},
	}
	kongOptions = append(kongOptions, config.KongOptions...)

	parser, err := kong.New(cmds, kongOptions...)
	if err != nil {
		log.Fatalf("failed to initialise CLI: %s", err)
	}

	kongplete.Complete(parser,
		kongplete.WithPredictor("shell", complete.PredictSet("auto", "posix", "sh", "bash", "dash", "ksh", "zsh", "cmd")),
		kongplete.WithPredictor("script", complete.PredictFiles("*.sh")),
	)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	configureLogging(cmds, p)
	p.Tracef("user config: %s", repr.String(userConfig))

	err = ctx.Run(p)
	if err != nil && p.WillLog(ui.LevelDebug) {
		p.Fatalf("%+v", err)
	} else if err != nil {
		p.Fatalf("%s", err)
	}
}

func configureLogging(cli cliInterface, p *ui.UI) {
	switch {
	case cli.getTrace():
		p.SetLevel(ui.LevelTrace)
	case cli.getDebug():
		p.SetLevel(ui.LevelDebug)
	case cli.getQuiet():
		p.SetLevel(ui.LevelFatal)
	default:
		p.SetLevel(cli.getLevel())
	}
}
