package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentskills/skillsref/pkg/config"
	"github.com/agentskills/skillsref/pkg/logger"
	"github.com/agentskills/skillsref/pkg/presenter"
	"github.com/agentskills/skillsref/pkg/skills"
	"github.com/agentskills/skillsref/pkg/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [skill-dir...]",
	Short: "Validate skill packages",
	Long: `Validate skill packages against the SKILL.md schema and lint rules.

With no arguments, every skill under the skills root is validated. With
arguments, exactly the named skill directories are validated; each must
contain a SKILL.md file.

Examples:
  skillsref validate
  skillsref validate --root ./skills --strict
  skillsref validate skills/create-pr skills/review-pr
  skillsref validate --output json`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.FromViper()
		if err != nil {
			presenter.Error(err, "Invalid configuration")
			os.Exit(1)
		}

		exitCode := runValidate(cmd, args, cfg)
		os.Exit(exitCode)
	},
}

func init() {
	flags := validateCmd.Flags()
	flags.String("root", skills.DefaultRoot, "Root directory holding one subdirectory per skill")
	flags.Bool("strict", false, "Treat warnings as failures")
	flags.StringP("output", "o", config.OutputText, "Report format (text or json)")
	flags.Int("max-line-length", validate.DefaultMaxLineLength, "Body line length limit")
	flags.Int("description-limit", validate.DefaultDescriptionLimit, "Description length soft limit")
	flags.BoolP("quiet", "q", false, "Omit passing skills from the text report")

	bindValidateFlags(flags)
}

// bindValidateFlags binds the validate flags to viper so config file and
// SKILLSREF_* env values share the same keys.
func bindValidateFlags(flags *pflag.FlagSet) {
	viper.BindPFlag("root", flags.Lookup("root"))
	viper.BindPFlag("strict", flags.Lookup("strict"))
	viper.BindPFlag("output", flags.Lookup("output"))
	viper.BindPFlag("max_line_length", flags.Lookup("max-line-length"))
	viper.BindPFlag("description_limit", flags.Lookup("description-limit"))
}

func runValidate(cmd *cobra.Command, args []string, cfg config.Config) int {
	ctx := cmd.Context()
	quiet, _ := cmd.Flags().GetBool("quiet")

	discovery, err := skills.NewDiscovery(skills.WithRoot(cfg.Root))
	if err != nil {
		presenter.Error(err, "Failed to initialize skill discovery")
		return 1
	}

	var packages []*skills.SkillPackage
	if len(args) > 0 {
		packages, err = discovery.FromDirs(args)
	} else {
		packages, err = discovery.Discover()
	}
	if err != nil {
		presenter.Error(err, "Failed to locate skill packages")
		return 1
	}

	logger.G(ctx).WithField("count", len(packages)).Debug("discovered skill packages")

	runner := validate.NewRunner()
	runner.Strict = cfg.Strict
	runner.Schema.DescriptionLimit = cfg.DescriptionLimit
	runner.Lint.MaxLineLength = cfg.MaxLineLength

	report := runner.Run(ctx, packages)

	switch cfg.Output {
	case config.OutputJSON:
		out, err := report.JSON()
		if err != nil {
			presenter.Error(err, "Failed to encode report")
			return 1
		}
		fmt.Println(out)
	default:
		report.Write(os.Stdout, !quiet)
	}

	if !report.OK() {
		return 1
	}
	return 0
}
