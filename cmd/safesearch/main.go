// Google Vision Safe Search workflow plugin host
// License: Apache License 2.0

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	stdio "io"
	"os"
	"os/signal"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/sirupsen/logrus"

	"infer-google-vision-safe-search/internal/gui"
	"infer-google-vision-safe-search/internal/io"
	"infer-google-vision-safe-search/internal/plugin"
	"infer-google-vision-safe-search/internal/safesearch"
	"infer-google-vision-safe-search/internal/workflow"
)

const AppID = "com.ikomia.infer-google-vision-safe-search"

func main() {
	imagePath := flag.String("image", "", "Image file to classify")
	credentials := flag.String("credentials", "", "Service account credentials file (.json)")
	paramsPath := flag.String("params", "", "YAML file with task parameters")
	envPath := flag.String("env", ".env", "Dotenv file loaded before reading configuration")
	jsonOutput := flag.Bool("json", false, "Print the result dict as JSON")
	guiMode := flag.Bool("gui", false, "Open the desktop window instead of running once")
	debugMode := flag.Bool("debug", false, "Enable debug mode with verbose logging")
	listTasks := flag.Bool("list", false, "Print the registered tasks as YAML and exit")
	flag.Parse()

	// Keep stdout clean for machine-readable output.
	logOutput := stdio.Writer(os.Stdout)
	if *jsonOutput || *listTasks {
		logOutput = os.Stderr
	}
	logger := initLogger(*debugMode, logOutput)
	logger.WithFields(logrus.Fields{
		"version":    safesearch.Version,
		"debug_mode": *debugMode,
	}).Info("Starting safe search plugin host")

	loadDotEnv(*envPath, logger)

	params, err := loadParams(*paramsPath, *credentials)
	if err != nil {
		logger.WithError(err).Fatal("Invalid parameters")
	}

	var taskOpts []safesearch.Option
	if *jsonOutput {
		taskOpts = append(taskOpts, safesearch.WithStdout(os.Stderr))
	}
	registry := workflow.NewRegistry()
	registry.Register(plugin.New(logger, taskOpts...))

	if *listTasks {
		if err := writeCatalog(os.Stdout, registry); err != nil {
			logger.WithError(err).Fatal("Failed to list tasks")
		}
		return
	}

	if *guiMode {
		p, _ := registry.Get(safesearch.TaskName)
		runGUI(p, params, logger)
		return
	}

	if *imagePath == "" {
		fmt.Fprintln(os.Stderr, "usage: safesearch -image <file> [-credentials <file.json>] [-params <file.yaml>] [-json]")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var out stdio.Writer
	if *jsonOutput {
		out = os.Stdout
	}
	if err := runOnce(ctx, registry, safesearch.TaskName, params, *imagePath, out, logger); err != nil {
		logger.WithError(err).Error("Safe search failed")
		os.Exit(1)
	}
}

// runOnce classifies one image. When out is non-nil the result dict is
// written there as JSON, otherwise it is logged.
func runOnce(ctx context.Context, registry *workflow.Registry, name string, params map[string]string, imagePath string, out stdio.Writer, logger *logrus.Logger) error {
	param := safesearch.NewParam()
	if err := param.SetValues(params); err != nil {
		return err
	}

	task, err := registry.CreateTask(name, param)
	if err != nil {
		return err
	}
	defer task.Close()

	imageTask, ok := task.(workflow.ImageTask)
	if !ok {
		return fmt.Errorf("task %s does not take an image input", task.Name())
	}

	img, err := io.NewImageLoader(logger).LoadImage(imagePath)
	if err != nil {
		return err
	}
	imageTask.ImageInput().SetImage(img)
	img.Close()

	if err := workflow.Run(ctx, task, logger); err != nil {
		return err
	}

	data := imageTask.DictOutput().Data()
	if out != nil {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	fields := logrus.Fields{}
	for key, value := range data.Map() {
		fields[key] = value
	}
	logger.WithFields(fields).Info("Safe search result")
	return nil
}

func runGUI(p workflow.Plugin, params map[string]string, logger *logrus.Logger) {
	myApp := app.NewWithID(AppID)
	myApp.SetIcon(theme.SearchIcon())
	myApp.Settings().SetTheme(theme.DefaultTheme())

	param := safesearch.NewParam()
	if err := param.SetValues(params); err != nil {
		logger.WithError(err).Fatal("Invalid parameters")
	}

	mainApp, err := gui.NewApplication(myApp, p, param, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create application")
	}
	mainApp.ShowAndRun()

	logger.Info("Application shutting down gracefully")
}

// initLogger initializes the logger with appropriate level
func initLogger(debugMode bool, output stdio.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(output)

	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logger
}
