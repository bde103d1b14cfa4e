package export

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"

	"github.com/Faultbox/toyscene/internal/logger"
	"github.com/Faultbox/toyscene/internal/scene"
)

// Encode serializes doc in the given format.
func Encode(doc *gltf.Document, format Format) ([]byte, error) {
	if format == FormatGLTF {
		for _, b := range doc.Buffers {
			if b.URI == "" && len(b.Data) > 0 {
				b.EmbeddedResource()
			}
		}
	}

	var buf bytes.Buffer
	enc := gltf.NewEncoder(&buf)
	enc.AsBinary = format == FormatGLB
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// Export builds the document for w, strips top-level lights and cameras
// and encodes the result.
func Export(w *scene.World, format Format) ([]byte, error) {
	doc, err := Document(w)
	if err != nil {
		return nil, err
	}
	removed := FilterTransient(doc)

	data, err := Encode(doc, format)
	if err != nil {
		return nil, err
	}

	logger.Debug("scene exported",
		logger.String("format", format.String()),
		logger.Int("nodes", len(doc.Nodes)),
		logger.Int("filtered", removed),
		logger.Int("bytes", len(data)))
	return data, nil
}

// Offer exports w and hands the bytes to saver under name. Nothing is saved
// when the export fails.
func Offer(w *scene.World, format Format, saver Saver, name string) (string, error) {
	data, err := Export(w, format)
	if err != nil {
		logger.Error("scene export failed", logger.Err(err))
		return "", err
	}

	path, err := saver.Save(format.FileName(name), data)
	if err != nil {
		if !errors.Is(err, ErrCancelled) {
			logger.Error("saving export failed", logger.Err(err))
		}
		return "", err
	}

	logger.Info("scene saved", logger.String("path", path), logger.Int("bytes", len(data)))
	return path, nil
}
