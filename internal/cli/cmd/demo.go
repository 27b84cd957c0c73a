package cmd

import (
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/accessible-ui/tabs/internal/cli/model"
	"github.com/accessible-ui/tabs/internal/infrastructure/config"
	"github.com/accessible-ui/tabs/internal/logging"
)

type demoFlags struct {
	manual     bool
	controlled bool
	noRemember bool
	active     int
	disabled   []int
	labels     []string
}

var demo demoFlags

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive tabs demo",
	Long: `Open an interactive tab set in the terminal.

Keys:
  left/right   move focus to the previous/next tab (wraps)
  home/end     move focus to the first/last tab
  enter/space  activate the focused tab
  delete       remove the focused tab
  tab          switch focus between the tab list and the panel
  ?            toggle help
  q            quit

Keybindings come from the config file and are reloaded while the demo runs.

Examples:
  tabs demo                            # automatic activation
  tabs demo --manual                   # activate with enter/space
  tabs demo --labels one,two,three --disabled 1
  tabs demo --controlled --active 2`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().BoolVarP(&demo.manual, "manual", "m", false, "require enter/space to activate a focused tab")
	demoCmd.Flags().BoolVar(&demo.controlled, "controlled", false, "let the demo own the active index")
	demoCmd.Flags().BoolVar(&demo.noRemember, "no-remember", false, "do not restore or save the active tab")
	demoCmd.Flags().IntVarP(&demo.active, "active", "a", -1, "initially active tab (default from config)")
	demoCmd.Flags().IntSliceVarP(&demo.disabled, "disabled", "d", nil, "indices of disabled tabs")
	demoCmd.Flags().StringSliceVarP(&demo.labels, "labels", "l", nil, "tab labels")
}

func runDemo(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "demo")
	log := logging.FromContext(ctx)

	cfg, err := demoConfig(app.Config, demo)
	if err != nil {
		return err
	}

	m, err := model.NewTabsModel(ctx, model.TabsOptions{
		Config:     cfg,
		Theme:      app.Theme,
		TabState:   app.TabState,
		Controlled: demo.controlled,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	app.ConfigManager.OnConfigChange(func(reloaded *config.Config) {
		p.Send(model.ConfigChanged(reloaded))
	})
	if err := app.ConfigManager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watching disabled")
	}

	log.Info().
		Str("tabset", cfg.Tabs.Name).
		Bool("manual", cfg.Tabs.ManualActivation).
		Bool("controlled", demo.controlled).
		Msg("starting demo")

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}

// demoConfig applies command-line overrides to a copy of cfg.
func demoConfig(base *config.Config, flags demoFlags) (*config.Config, error) {
	cfg := *base
	cfg.Tabs.Labels = slices.Clone(base.Tabs.Labels)
	cfg.Tabs.Disabled = slices.Clone(base.Tabs.Disabled)

	if flags.manual {
		cfg.Tabs.ManualActivation = true
	}
	if flags.noRemember {
		cfg.Tabs.RememberActive = false
	}
	if len(flags.labels) > 0 {
		cfg.Tabs.Labels = slices.Clone(flags.labels)
		if cfg.Tabs.DefaultActive >= len(cfg.Tabs.Labels) {
			cfg.Tabs.DefaultActive = 0
		}
	}
	if flags.disabled != nil {
		cfg.Tabs.Disabled = slices.Clone(flags.disabled)
	}
	if flags.active >= 0 {
		cfg.Tabs.DefaultActive = flags.active
	}

	if err := config.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid demo options: %w", err)
	}
	return &cfg, nil
}
