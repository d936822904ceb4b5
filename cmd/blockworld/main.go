package main

import (
	"blockworld/internal/camera"
	"blockworld/internal/config"
	"blockworld/internal/graphics"
	"blockworld/internal/input"
	"blockworld/internal/profiling"
	"blockworld/internal/registry"
	"blockworld/internal/texture"
	"blockworld/internal/world"
	"blockworld/internal/world/gen"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		fatal(err)
	}
	level, _ := cfg.Log.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	defer closer.Close()

	if err := glfw.Init(); err != nil {
		fatal(fmt.Errorf("init glfw: %w", err))
	}

	window, err := setupWindow(cfg.Window)
	if err != nil {
		fatal(err)
	}

	game, err := setupGame(cfg, logger)
	if err != nil {
		fatal(err)
	}
	closer.Bind(game.Close)

	game.input.SetCallbacks(window)
	window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if !game.paused {
			game.camera.HandleMouseMovement(xpos, ypos)
		}
	})
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		game.camera.SetViewport(width, height)
	})

	runGameLoop(window, game)

	// GL objects and glfw belong to this thread; closer hooks run elsewhere
	game.Close()
	game.dispose()
	glfw.Terminate()
}

func fatal(err error) {
	slog.Error("blockworld failed", "err", err)
	closer.Exit(1)
}

func setupWindow(cfg config.Window) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init gl: %w", err)
	}

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	return window, nil
}

// game holds everything the frame loop touches.
type game struct {
	cfg      config.Config
	log      *slog.Logger
	world    *world.World
	camera   *camera.Camera
	renderer *graphics.ChunkRenderer
	input    *input.InputManager
	profiler *profiling.Tracker
	paused   bool
}

func setupGame(cfg config.Config, logger *slog.Logger) (*game, error) {
	reg, err := loadRegistry(cfg.Assets)
	if err != nil {
		return nil, err
	}
	atlas, err := loadAtlas(cfg.Assets)
	if err != nil {
		return nil, err
	}
	atlasTex, err := graphics.UploadAtlas(atlas)
	if err != nil {
		return nil, err
	}

	profiler := profiling.New()
	chunkRenderer, err := graphics.NewChunkRenderer(atlasTex, profiler)
	if err != nil {
		return nil, err
	}

	im := input.NewInputManager()
	w := world.New(cfg.World, reg, newGenerator(cfg.World),
		world.WithLogger(logger),
		world.WithAtlas(atlas),
		world.WithReloadTrigger(input.NewToggleKey(im, input.ActionReloadMeshes)),
		world.WithProfiler(profiler),
	)

	spawn := w.FindSpawnPoint()
	cam := camera.New(spawn.Add(eyeOffset), cfg.Window.Width, cfg.Window.Height)
	cam.SetFOV(cfg.Window.FOV)
	w.Start(cam)

	return &game{
		cfg:      cfg,
		log:      logger,
		world:    w,
		camera:   cam,
		renderer: chunkRenderer,
		input:    im,
		profiler: profiler,
	}, nil
}

// Close stops the loaders. Safe from any goroutine.
func (g *game) Close() {
	g.world.Close()
}

// dispose frees GL objects. Main thread only, after Close.
func (g *game) dispose() {
	g.world.WithLock(func(m *world.ChunkManager) { m.DeleteMeshes() })
	g.renderer.Dispose()
}

func newGenerator(cfg config.World) gen.TerrainGenerator {
	if cfg.Generator == config.GeneratorSuperFlat {
		return gen.SuperFlatGenerator{}
	}
	return gen.NewClassicOverWorldGenerator(cfg.Seed)
}

func loadRegistry(a config.Assets) (*registry.Registry, error) {
	if a.BlockRegistry == "" {
		return registry.Default()
	}
	return registry.LoadFile(a.BlockRegistry)
}

func loadAtlas(a config.Assets) (*texture.Atlas, error) {
	if a.TextureAtlas == "" {
		slog.Warn("no texture atlas configured, using generated colours")
		return texture.Generated(a.AtlasImageSize, a.AtlasCellSize)
	}
	return texture.Load(a.TextureAtlas, a.AtlasImageSize, a.AtlasCellSize)
}
