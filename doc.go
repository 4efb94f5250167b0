// Package navmenu is an animated full-screen navigation menu for [Ebitengine],
// built on a small retained-mode scene graph.
//
// A round button toggles the menu. Opening morphs two colored background
// layers from a flat strip at the top of the screen, through a bulge, to a
// full-screen fill, fades the link panel in and reveals each link label line
// by line. Closing plays the same choreography back. The button icon morphs
// between three lines and a cross in step with the state.
//
// # Quick start
//
//	scene := navmenu.NewScene()
//	menu, err := navmenu.New(scene, navmenu.Options{Fonts: fonts})
//	if err != nil {
//		log.Fatal(err)
//	}
//	menu.Mount(scene.Root())
//	navmenu.Run(scene, navmenu.RunConfig{Title: "Menu", Width: 1280, Height: 720})
//
// # Animation model
//
// Every animation is a [Timeline]: property segments placed at offsets,
// advanced by the scene's [Ticker] once per frame. Each sub-controller
// ([ShapeMorph], [Panel], [TextReveal], [ToggleButton]) owns its timelines
// and exposes intent-level commands. [Menu] holds the open/closed state and
// runs the entry action of the state it moves into. Toggling mid-animation
// restarts the affected timelines from their start rather than queueing.
//
// Timelines are deterministic: tests drive them with [Scene.Advance] and
// inspect node properties directly, with no window required.
//
// # Configuration
//
// [LoadConfig] reads a YAML file and NAVMENU_ environment overrides on top of
// [DefaultConfig]. Colors, keyframe paths, durations, eases and the route list
// are all configurable.
//
// [Ebitengine]: https://ebitengine.org
package navmenu
