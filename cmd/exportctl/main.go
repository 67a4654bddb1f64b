package main

import (
	"os"

	"model-export-service/internal/adapters/secondary/ultralytics"
	"model-export-service/internal/adapters/secondary/weights"
	"model-export-service/internal/config"
	"model-export-service/internal/core/services"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// exportctl runs the export procedures directly, without the server or a
// database: `exportctl batch` walks all five size variants, `exportctl
// finetuned` exports the fine-tuned checkpoint at 640.

func newExportService() (*services.ExportService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	fetcher := weights.NewFetcher(&cfg.Export)
	loader := ultralytics.NewLoader(&cfg.Export, fetcher)
	return services.NewExportService(loader, nil), nil
}

var rootCmd = &cobra.Command{
	Use:   "exportctl",
	Short: "Export pretrained YOLO11 detection models to CoreML with INT8 quantization and embedded NMS",
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Export all five size variants (n, s, m, l, x) in order, stopping at the first failure",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newExportService()
		if err != nil {
			return err
		}

		jobs, err := svc.ExportAll(cmd.Context())
		for _, job := range jobs {
			if job.ArtifactPath != "" {
				log.WithFields(log.Fields{"model": job.ModelName, "artifact": job.ArtifactPath}).Info("exported")
			}
		}
		return err
	},
}

var finetunedCmd = &cobra.Command{
	Use:   "finetuned",
	Short: "Export the fine-tuned checkpoint with the input resolution pinned at 640",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newExportService()
		if err != nil {
			return err
		}

		job, err := svc.ExportFinetuned(cmd.Context())
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{"model": job.ModelName, "artifact": job.ArtifactPath}).Info("exported")
		return nil
	},
}

func main() {
	rootCmd.AddCommand(batchCmd, finetunedCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
