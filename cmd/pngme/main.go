// Command pngme embeds, extracts, and removes auxiliary chunks in PNG files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DWaterhouse1/pngme/pngme"
)

const usage = `Usage: pngme <command> [arguments]

Commands:
  encode <file> <type> <message> [output]   embed a message in a new chunk
  decode <file> <type>                      print the first matching chunk's message
  remove <file> <type>                      delete the first matching chunk
  print <file>                              list every chunk in the file
  verify [-fix] [-v] <file>...              check chunk structure and CRCs

Run 'pngme <command> -h' for command flags.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch cmd := os.Args[1]; cmd {
	case "encode":
		err = cmdEncode(os.Args[2:])
	case "decode":
		err = cmdDecode(os.Args[2:])
	case "remove":
		err = cmdRemove(os.Args[2:])
	case "print":
		err = cmdPrint(os.Args[2:])
	case "verify":
		err = cmdVerify(os.Args[2:])
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "pngme: unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "pngme:", err)
		os.Exit(1)
	}
}

// loadImage reads and parses a PNG file.
func loadImage(path string, opts ...pngme.DecodeOption) (*pngme.Image, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	img, err := pngme.Decode(raw, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return img, nil
}

// saveImage overwrites path with the serialized image.
func saveImage(path string, img *pngme.Image) error {
	if err := os.WriteFile(path, img.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func cmdEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	compress := fs.Bool("z", false, "store the message zlib-compressed (zTXt layout, keyword \"Comment\")")
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) < 3 || len(rest) > 4 {
		return errors.New("usage: pngme encode [-z] <file> <type> <message> [output]")
	}
	path, typeCode, message := rest[0], rest[1], rest[2]

	chunkType, err := pngme.ChunkTypeFromString(typeCode)
	if err != nil {
		return err
	}

	img, err := loadImage(path)
	if err != nil {
		return err
	}

	var chunk pngme.Chunk
	if *compress {
		chunk, err = pngme.NewCompressedTextChunk(chunkType, "Comment", message)
	} else {
		chunk, err = pngme.NewChunk(chunkType, []byte(message))
	}
	if err != nil {
		return err
	}
	img.AppendChunk(chunk)

	out := path
	if len(rest) == 4 {
		out = rest[3]
	}
	return saveImage(out, img)
}

func cmdDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	compressed := fs.Bool("z", false, "treat the chunk payload as zTXt-layout compressed text")
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) != 2 {
		return errors.New("usage: pngme decode [-z] <file> <type>")
	}
	path, typeCode := rest[0], rest[1]

	chunkType, err := pngme.ChunkTypeFromString(typeCode)
	if err != nil {
		return err
	}

	img, err := loadImage(path)
	if err != nil {
		return err
	}

	chunk, ok := img.FirstByType(chunkType)
	if !ok {
		return fmt.Errorf("%s: %w: %s", path, pngme.ErrChunkNotFound, chunkType)
	}

	if *compressed {
		_, text, err := pngme.DecodeCompressedTextChunk(chunk)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	}

	text, err := chunk.DataString()
	if errors.Is(err, pngme.ErrNotText) {
		fmt.Printf("<%d bytes of binary data, CRC %08x>\n", chunk.Length(), chunk.CRC())
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func cmdRemove(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: pngme remove <file> <type>")
	}
	path, typeCode := args[0], args[1]

	chunkType, err := pngme.ChunkTypeFromString(typeCode)
	if err != nil {
		return err
	}

	img, err := loadImage(path)
	if err != nil {
		return err
	}

	if _, err := img.RemoveFirst(chunkType); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return saveImage(path, img)
}

func cmdPrint(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: pngme print <file>")
	}
	path := args[0]

	img, err := loadImage(path)
	if err != nil {
		return err
	}

	fmt.Println(filepath.Base(path))
	if h, err := img.Header(); err == nil {
		fmt.Printf("%dx%d, %d-bit %s\n", h.Width, h.Height, h.BitDepth, h.ColorName())
	}

	for i, c := range img.Chunks() {
		fmt.Printf("[%d] %s  length=%d  crc=%08x  %s\n",
			i, c.Type(), c.Length(), c.CRC(), describeType(c.Type()))
	}
	return nil
}

// describeType summarizes a chunk type's property bits.
func describeType(t pngme.ChunkType) string {
	s := "ancillary"
	if t.IsCritical() {
		s = "critical"
	}
	if t.IsPublic() {
		s += ",public"
	} else {
		s += ",private"
	}
	if t.IsSafeToCopy() {
		s += ",safe-to-copy"
	}
	if !t.IsValid() {
		s += ",reserved-bit-invalid"
	}
	return s
}
