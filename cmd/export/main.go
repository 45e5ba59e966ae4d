// Command export writes all invoices to a CSV or XLSX file, or uploads the
// export to S3 and prints a time-limited download link.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"invoicehub/internal/config"
	"invoicehub/internal/domain"
	"invoicehub/internal/export"
	"invoicehub/internal/logger"
	"invoicehub/internal/port"
	"invoicehub/internal/repository/postgres"
	"invoicehub/internal/service"
	s3storage "invoicehub/internal/storage/s3"
)

type exportOptions struct {
	format     string
	out        string
	s3Key      string
	upload     bool
	presignFor time.Duration
}

func main() {
	if err := newExportCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("export failed")
		os.Exit(1)
	}
}

func newExportCmd() *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:           "export",
		Short:         "Export invoices as CSV or XLSX",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.upload = cmd.Flags().Changed("s3-key")
			return runExport(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "", "csv or xlsx (default: export.default_format config)")
	cmd.Flags().StringVar(&opts.out, "out", "", "Output file (default: invoices_<date>.<format>)")
	cmd.Flags().StringVar(&opts.s3Key, "s3-key", "", "Upload to the configured bucket under this key instead of writing a file")
	cmd.Flags().DurationVar(&opts.presignFor, "link-ttl", 15*time.Minute, "Lifetime of the download link printed after an upload")

	return cmd
}

func runExport(ctx context.Context, cmd *cobra.Command, opts exportOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Setup(cfg.Log)

	def, err := export.ParseFormat(cfg.Export.DefaultFormat, domain.ExportFormatCSV)
	if err != nil {
		return fmt.Errorf("invalid export.default_format: %w", err)
	}
	format, err := export.ParseFormat(opts.format, def)
	if err != nil {
		return err
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	var storage port.ObjectStorage
	if opts.upload {
		storage, err = s3storage.NewS3Client(ctx, &cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	svc := service.NewExportService(postgres.NewInvoiceRepo(db), storage, service.ExportConfig{
		SheetName: cfg.Export.SheetName,
		Bucket:    cfg.S3.Bucket,
	})

	if opts.upload {
		return uploadExport(ctx, cmd, svc, storage, cfg.S3.Bucket, format, opts)
	}

	path := opts.out
	if path == "" {
		path = export.BuildFilename("invoices", format, time.Now().UTC())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := svc.Export(ctx, format, w); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	log.Info().Str("path", path).Str("format", string(format)).Msg("invoices exported")
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func uploadExport(
	ctx context.Context,
	cmd *cobra.Command,
	svc service.ExportService,
	storage port.ObjectStorage,
	bucket string,
	format domain.ExportFormat,
	opts exportOptions,
) error {
	key := opts.s3Key
	if key == "" {
		key = "exports/" + export.BuildFilename("invoices", format, time.Now().UTC())
	}
	out, err := svc.ExportToStorage(ctx, format, key)
	if err != nil {
		return err
	}
	log.Info().Str("location", out.Location).Str("etag", out.ETag).Msg("export uploaded")

	url, err := storage.PresignGet(ctx, bucket, key, opts.presignFor)
	if err != nil {
		return fmt.Errorf("presigning download link: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}
