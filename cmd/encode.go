package cmd

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AnyUserName/avifpix/internal/avif"
	"github.com/AnyUserName/avifpix/internal/hasher"
	"github.com/AnyUserName/avifpix/internal/preset"
	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	encodeOut        string
	encodePreset     string
	encodeQuality    int
	encodeSpeed      int
	encodeWidth      int
	encodeColorSpace string
	encodeHashName   bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode <input_image>",
	Short: "Encode a single image to AVIF",
	Long: `Decodes an image (png, jpg, jpeg, gif, webp, bmp, tiff), optionally
downscales it, and encodes it to AVIF via avifenc.

With --hash-name the output filename is content-addressed:
<name>.<hash>.avif`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeOut, "out", "o", "", "output path (default: input with .avif extension)")
	encodeCmd.Flags().StringVarP(&encodePreset, "preset", "p", "balanced", "encode preset")
	encodeCmd.Flags().IntVarP(&encodeQuality, "quality", "q", -1, "quality 0-100 (-1 = preset default)")
	encodeCmd.Flags().IntVarP(&encodeSpeed, "speed", "s", -1, "speed 0-10 (-1 = preset default)")
	encodeCmd.Flags().IntVarP(&encodeWidth, "width", "w", 0, "downscale to width (0 = keep original)")
	encodeCmd.Flags().StringVar(&encodeColorSpace, "colorspace", "rgb", "encode color space: rgb or ycbcr")
	encodeCmd.Flags().BoolVar(&encodeHashName, "hash-name", false, "content-addressed output filename")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(_ *cobra.Command, args []string) error {
	inputPath := args[0]
	start := time.Now()

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", inputPath, err)
	}
	defer f.Close()

	img, srcFormat, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inputPath, err)
	}

	bounds := img.Bounds()
	logVerbose("input:  %s (%s, %dx%d)", inputPath, srcFormat, bounds.Dx(), bounds.Dy())

	if encodeWidth > 0 && encodeWidth < bounds.Dx() {
		h := bounds.Dy() * encodeWidth / bounds.Dx()
		if h < 1 {
			h = 1
		}
		img = imaging.Resize(img, encodeWidth, h, imaging.Lanczos)
		logVerbose("resize: %dx%d", encodeWidth, h)
	}

	pre := preset.Get(encodePreset)
	quality := pre.Quality
	if encodeQuality >= 0 {
		quality = encodeQuality
	}
	speed := pre.Speed
	if encodeSpeed >= 0 {
		speed = encodeSpeed
	}

	cfg := avif.NewConfig(quality, speed)
	if strings.EqualFold(encodeColorSpace, "ycbcr") {
		cfg = cfg.WithColorSpace(avif.ColorSpaceYCbCr)
	}
	logVerbose("config: quality=%d speed=%d colorspace=%s", cfg.Quality, cfg.Speed, cfg.ColorSpace)

	sess := avif.NewSession(nil)
	raw := avif.FromImage(img)
	logVerbose("pixels: %s %dx%d (%d bytes)", raw.Format, raw.Width, raw.Height, len(raw.Pix))

	// Encode into memory first so the output path can carry the content
	// hash and so a failed encode leaves no file behind.
	var payload bytes.Buffer
	if err := sess.Encode(raw, cfg, &payload); err != nil {
		return err
	}

	outPath := encodeOut
	if outPath == "" {
		ext := filepath.Ext(inputPath)
		outPath = strings.TrimSuffix(inputPath, ext) + ".avif"
	}
	if encodeHashName {
		hash := hasher.ContentHash(payload.Bytes(), 16)
		ext := filepath.Ext(outPath)
		outPath = strings.TrimSuffix(outPath, ext) + "." + hash[:8] + ext
	}

	if err := os.WriteFile(outPath, payload.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	fmt.Printf("%s → %s (%d bytes, %s)\n",
		inputPath, outPath, payload.Len(), time.Since(start).Round(time.Millisecond))
	return nil
}
