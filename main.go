package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"

	"github.com/wilhoit/rayforge/pkg/core"
	"github.com/wilhoit/rayforge/pkg/integrator"
	"github.com/wilhoit/rayforge/pkg/renderer"
	"github.com/wilhoit/rayforge/pkg/scene"
)

// Config holds the rendering configuration parsed from flags.
type Config struct {
	SceneType  string
	Width      int
	MaxPasses  int
	MaxSamples int
	NumWorkers int
	Help       bool
	CPUProfile string
}

func main() {
	config := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	logger := core.NewZerologLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).With().Timestamp().Logger())

	if config.CPUProfile != "" {
		f, err := os.Create(config.CPUProfile)
		if err != nil {
			logger.Infof("could not create CPU profile: %v", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Infof("could not start CPU profile: %v", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	startTime := time.Now()

	sceneObj, err := createScene(config.SceneType)
	if err != nil {
		logger.Infof("error creating scene: %v", err)
		os.Exit(1)
	}

	width := config.Width
	height := int(float64(width) / sceneObj.AspectRatio())

	finalImage, stats, err := render(context.Background(), config, sceneObj, width, height, logger)
	if err != nil {
		logger.Infof("render failed: %v", err)
		os.Exit(1)
	}

	outputDir := createOutputDir(config.SceneType)
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	if err := saveImageToFile(finalImage, filename); err != nil {
		logger.Infof("error saving image: %v", err)
		os.Exit(1)
	}

	renderTime := time.Since(startTime)
	logger.Infof("render completed in %v", renderTime)
	logger.Infof("samples per pixel: %.1f (range %d - %d)", stats.AverageSamples, stats.MinSamples, stats.MaxSamplesUsed)
	logger.Infof("render saved as %s", filename)
}

func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Scene to render: default, cornell, spheregrid")
	flag.IntVar(&config.Width, "width", 400, "Image width in pixels; height follows the scene camera's aspect ratio")
	flag.IntVar(&config.MaxPasses, "max-passes", 5, "Maximum number of progressive passes")
	flag.IntVar(&config.MaxSamples, "max-samples", 50, "Maximum samples per pixel")
	flag.IntVar(&config.NumWorkers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.StringVar(&config.CPUProfile, "cpuprofile", "", "Write CPU profile to file")
	flag.Parse()
	return config
}

func showHelp() {
	fmt.Println("rayforge: a progressive Monte Carlo path tracer")
	fmt.Println("Usage: rayforge [options]")
	fmt.Println()
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	fmt.Println("  default    - spheres with lambertian/metal/glass materials over a ground quad")
	fmt.Println("  cornell    - the classic Cornell box")
	fmt.Println("  spheregrid - 20x20 grid of metallic spheres (BVH stress test)")
	fmt.Println()
	fmt.Println("Output is saved to output/<scene>/render_<timestamp>.png")
}

// createScene builds the scene named by sceneType.
func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "cornell":
		return scene.NewCornellScene(), nil
	case "spheregrid":
		return scene.NewSphereGridScene(), nil
	case "default", "":
		return scene.NewDefaultScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// render runs progressive rendering to completion and returns the
// final assembled image and aggregate stats.
func render(ctx context.Context, config Config, sceneObj core.Scene, width, height int, logger core.Logger) (*image.RGBA, renderer.RenderStats, error) {
	progressiveConfig := renderer.DefaultProgressiveConfig()
	progressiveConfig.MaxPasses = config.MaxPasses
	progressiveConfig.MaxSamplesPerPixel = config.MaxSamples
	progressiveConfig.NumWorkers = config.NumWorkers

	pathTracer := integrator.NewIntegrator(sceneObj.SamplingConfig(), logger)
	progressiveRT := renderer.NewProgressiveRaytracer(sceneObj, pathTracer, width, height, progressiveConfig, logger)

	passChan, _, errChan := progressiveRT.RenderProgressive(ctx, renderer.RenderOptions{TileUpdates: false})

	var finalImage *image.RGBA
	var finalStats renderer.RenderStats

	for passChan != nil || errChan != nil {
		select {
		case result, ok := <-passChan:
			if !ok {
				passChan = nil
				continue
			}
			finalImage = result.Image
			finalStats = result.Stats
		case err, ok := <-errChan:
			if !ok {
				errChan = nil
				continue
			}
			if err != nil {
				return nil, renderer.RenderStats{}, err
			}
		}
	}

	if finalImage == nil {
		return nil, renderer.RenderStats{}, fmt.Errorf("no passes completed")
	}
	return finalImage, finalStats, nil
}

func createOutputDir(sceneType string) string {
	if sceneType == "" {
		sceneType = "default"
	}
	outputDir := filepath.Join("output", sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("error creating output directory: %v\n", err)
		os.Exit(1)
	}
	return outputDir
}

func saveImageToFile(img *image.RGBA, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}
