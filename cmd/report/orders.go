package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/banam0503-alt/goc-cafe/pkg/model"
	"github.com/banam0503-alt/goc-cafe/pkg/utils"
)

var (
	exporterName string
	exporterRole string
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Listing of every order (tat_ca_don_hang.xlsx)",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := exportService()
		if err != nil {
			return err
		}

		filename, data, err := svc.ExportOrders(context.Background(), model.ExportOrdersRequest{
			ExporterName: exporterName,
			ExporterRole: exporterRole,
		})
		if err != nil {
			return err
		}

		return writeWorkbook(filename, data)
	},
}

func init() {
	rootCmd.AddCommand(ordersCmd)

	ordersCmd.Flags().StringVar(&exporterName, "name", utils.DEFAULT_EXPORTER_NAME, "Exporter printed in the footer")
	ordersCmd.Flags().StringVar(&exporterRole, "role", utils.DEFAULT_EXPORTER_ROLE, "Exporter role printed in the footer")
}
