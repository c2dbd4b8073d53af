package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jpfielding/qoi.go/pkg/qoi"
	"github.com/jpfielding/qoi.go/pkg/util"
	"github.com/spf13/cobra"
)

// NewInfoCmd creates the info cobra command
func NewInfoCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show QOI header details",
		Long:  "Parses and displays the header of a QOI file: dimensions, channels, colorspace and decoded buffer size.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath, _ := cmd.Flags().GetString("file")

			if filePath == "" && len(args) > 0 {
				filePath = args[0]
			}
			if filePath == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}

			data, err := os.ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("read error: %w", err)
			}

			h, err := qoi.ParseHeader(data)
			if err != nil {
				return fmt.Errorf("parse error: %w", err)
			}

			switch format, _ := cmd.Flags().GetString("format"); format {
			case "json":
				j, _ := json.Marshal(h)
				os.Stdout.Write(j)
				fmt.Println()
			default:
				fmt.Println("=== QOI Header ===")
				fmt.Printf("Width: %d\n", h.Width)
				fmt.Printf("Height: %d\n", h.Height)
				fmt.Printf("Channels: %d\n", h.Channels)
				fmt.Printf("Colorspace: %d (0=sRGB+linear alpha, 1=linear)\n", h.Colorspace)
				fmt.Printf("PixelBufferSize: %d bytes\n", h.PixelBufferSize())
				fmt.Printf("ContentID: %s\n", util.ContentID(data))
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "QOI file path to inspect")
	pf.String("format", "text", "output format (text|json)")
	return cmd
}

// NewValidateCmd sniffs whether a file is a decodable QOI image. Exits
// non-zero when it is not.
func NewValidateCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check whether a file is a valid QOI image",
		Long:  "Runs the header-only fast path; no pixel data is decoded.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("file path is required")
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read error: %w", err)
			}
			if !qoi.Validate(data) {
				return fmt.Errorf("%s: not a valid QOI image", args[0])
			}
			fmt.Printf("%s: valid QOI image\n", args[0])
			return nil
		},
	}
	return cmd
}
