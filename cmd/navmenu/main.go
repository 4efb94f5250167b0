// Command navmenu opens a window showing the animated navigation menu over a
// placeholder page. Click the round button to toggle it, click a link to
// navigate.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/navmenu"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"
)

const windowTitle = "navmenu"

var (
	configFile string
	startPath  string
	width      int
	height     int
	debug      bool
	showFPS    bool
	scriptFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "navmenu",
		Short: "animated navigation menu demo",
		RunE:  runMenu,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "open the menu demo window",
		RunE:  runMenu,
	}
	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().StringVar(&startPath, "path", "", "current page path (overrides config)")
		c.Flags().IntVar(&width, "width", 0, "window width (overrides config)")
		c.Flags().IntVar(&height, "height", 0, "window height (overrides config)")
		c.Flags().BoolVar(&debug, "debug", false, "log menu and timeline activity to stderr")
		c.Flags().BoolVar(&showFPS, "fps", false, "show FPS counter")
		c.Flags().StringVar(&scriptFile, "script", "", "input script to play (yaml); the window closes when it ends")
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := navmenu.LoadConfig(configFile)
			if err != nil {
				return err
			}
			out, err := cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write the default configuration to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err == nil {
				return fmt.Errorf("%s already exists", args[0])
			}
			if err := navmenu.DefaultConfig().Save(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
	configCmd.AddCommand(initCmd)

	rootCmd.AddCommand(runCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := navmenu.LoadConfig(configFile)
	if err != nil {
		return err
	}
	if startPath != "" {
		cfg.Path = startPath
	}
	if width > 0 {
		cfg.Width = float64(width)
	}
	if height > 0 {
		cfg.Height = float64(height)
	}

	fonts, err := navmenu.LoadFontSet(goregular.TTF, cfg.Text)
	if err != nil {
		return err
	}

	scene := navmenu.NewScene()
	scene.SetDebugMode(debug)
	scene.ClearColor = navmenu.Color{R: 0.96, G: 0.95, B: 0.93, A: 1}

	page := navmenu.NewText("page", "Current page: "+cfg.Path, fonts.Medium)
	page.TextBlock.Color = navmenu.MustHexColor(cfg.Colors.Link)
	page.X = cfg.Text.Indent
	page.Y = cfg.Height / 2
	scene.Root().AddChild(page)

	menu, err := navmenu.New(scene, navmenu.Options{Config: cfg, Fonts: fonts})
	if err != nil {
		return err
	}
	menu.OnNavigate = func(path string) {
		page.TextBlock.Content = "Current page: " + path
		log.Printf("navigate %s", path)
	}
	menu.Mount(scene.Root())

	if scriptFile != "" {
		data, err := os.ReadFile(scriptFile)
		if err != nil {
			return err
		}
		script, err := navmenu.LoadScript(data)
		if err != nil {
			return err
		}
		script.Menu = menu
		scene.SetScript(script)
		scene.SetUpdateFunc(func() error {
			if script.Done() {
				return ebiten.Termination
			}
			return nil
		})
	}

	return navmenu.Run(scene, navmenu.RunConfig{
		Title:   windowTitle,
		Width:   int(cfg.Width),
		Height:  int(cfg.Height),
		ShowFPS: showFPS,
	})
}
