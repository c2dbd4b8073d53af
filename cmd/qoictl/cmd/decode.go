package cmd

import (
	"context"
	"crypto/tls"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"os"
	"strings"

	"github.com/jpfielding/qoi.go/pkg/qoi"
	"github.com/jpfielding/qoi.go/pkg/util"
	"github.com/spf13/cobra"
)

// NewDecodeCmd decodes a QOI image to PNG
func NewDecodeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "QOI decode",
		Long:  "Decodes a QOI image from a file, stdin or URL and writes it out as PNG.",
		RunE: func(cmd *cobra.Command, args []string) error {
			uri, _ := cmd.Flags().GetString("uri")
			out, _ := cmd.Flags().GetString("out")

			if uri == "" && len(args) > 0 {
				uri = args[0]
			}
			if uri == "" {
				return fmt.Errorf("uri is required. Use --uri flag or provide as argument")
			}

			data, err := fetch(ctx, cmd, uri)
			if err != nil {
				return err
			}

			img, err := qoi.Decode(data)
			if err != nil {
				return fmt.Errorf("decode error: %w", err)
			}
			slog.InfoContext(ctx, "decoded",
				"width", img.Header.Width,
				"height", img.Header.Height,
				"channels", img.Header.Channels,
			)

			if out == "" {
				out = util.ContentID(data) + ".png"
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create output: %w", err)
			}
			defer f.Close()
			if err := png.Encode(f, img); err != nil {
				return fmt.Errorf("png encode error: %w", err)
			}
			slog.InfoContext(ctx, "wrote", "path", out)
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("uri", "u", "", "QOI image to decode (path, '-' for stdin, or http(s) URL)")
	pf.StringP("out", "o", "", "output PNG path (defaults to a content-derived name)")
	pf.Bool("verbose", false, "dump http request/response when fetching over http")
	return cmd
}

// fetch reads the full byte stream behind uri: stdin, http(s) or a file.
func fetch(ctx context.Context, cmd *cobra.Command, uri string) ([]byte, error) {
	var in io.Reader
	uri = strings.TrimPrefix(uri, "file://")
	switch {
	case uri == "-":
		in = os.Stdin
	case strings.HasPrefix(uri, "http"):
		// TODO make this a param
		cl := &http.Client{
			Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}},
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %v", err)
		}
		resp, err := cl.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to download: %v", err)
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			reqDump, _ := httputil.DumpRequest(req, true)
			os.Stderr.Write(reqDump)
			resDump, _ := httputil.DumpResponse(resp, false)
			os.Stderr.Write(resDump)
		}
		in = resp.Body
		defer resp.Body.Close()
	default:
		f, err := os.Open(uri)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %v", err)
		}
		in = f
		defer f.Close()
	}
	return io.ReadAll(in)
}
