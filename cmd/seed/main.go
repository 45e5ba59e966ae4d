// Command seed loads a JSON export of document records and writes the
// normalized vendors, customers, invoices, documents and line items.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"invoicehub/internal/config"
	"invoicehub/internal/ingest"
	"invoicehub/internal/logger"
	"invoicehub/internal/port"
	"invoicehub/internal/repository/postgres"
	s3storage "invoicehub/internal/storage/s3"
)

type seedOptions struct {
	file     string
	workers  int
	currency string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newSeedCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("seed failed")
		os.Exit(1)
	}
}

func newSeedCmd() *cobra.Command {
	var opts seedOptions

	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Load seed records into the database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Seed file path or s3://bucket/key (default: seed.file config)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Concurrent record writers (default: seed.workers config)")
	cmd.Flags().StringVar(&opts.currency, "currency", "", "Currency for records without one (default: seed.default_currency config)")

	return cmd
}

func runSeed(ctx context.Context, cmd *cobra.Command, opts seedOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Setup(cfg.Log)

	if !cmd.Flags().Changed("file") {
		opts.file = cfg.Seed.File
	}
	if !cmd.Flags().Changed("workers") {
		opts.workers = cfg.Seed.Workers
	}
	if !cmd.Flags().Changed("currency") {
		opts.currency = cfg.Seed.DefaultCurrency
	}

	var storage port.ObjectStorage
	if strings.HasPrefix(opts.file, "s3://") {
		storage, err = s3storage.NewS3Client(ctx, &cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	records, err := ingest.LoadSource(ctx, opts.file, storage)
	if err != nil {
		return err
	}
	log.Info().Str("source", opts.file).Int("records", len(records)).Msg("seed source loaded")

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	vendorRepo := postgres.NewVendorRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)

	ingester := ingest.NewIngester(
		ingest.NewResolver(vendorRepo, customerRepo),
		postgres.NewInvoiceRepo(db),
		postgres.NewDocumentRepo(db),
		postgres.NewLineItemRepo(db),
		ingest.Options{Workers: opts.workers, DefaultCurrency: opts.currency},
	)

	summary := ingester.Run(ctx, records)
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d/%d records (%d failed)\n", summary.Processed, summary.Total, summary.Failed)
	return ctx.Err()
}
