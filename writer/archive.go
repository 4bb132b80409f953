package writer

import (
	"archive/zip"
	"os"
	"time"

	"github.com/Erdk/luxor/log"
)

// Write all mapping entries as sequential entries into one compressed zip
// archive. Each entry's declared path becomes its archive entry name; entries
// with no path or no body are skipped. The first error aborts the write.
func WriteArchive(m *Mapping, archiveFile string) error {
	logger := log.New("writer")
	logger.Noticef("writing compressed scene to %s", archiveFile)
	start := time.Now()

	f, err := os.Create(archiveFile)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	err = m.Each(func(id string, art Artifact) error {
		if art.Path == "" || art.Body == nil {
			logger.Warningf("skipping archive entry %q: no destination or body", id)
			return nil
		}

		data, err := art.Body.Bytes()
		if err != nil {
			return err
		}

		entry, err := zw.Create(art.Path)
		if err != nil {
			return err
		}
		_, err = entry.Write(data)
		return err
	})
	if err != nil {
		zw.Close()
		return err
	}
	if err = zw.Close(); err != nil {
		return err
	}

	logger.Noticef("compressed scene in %d ms", time.Since(start).Nanoseconds()/1e6)
	return nil
}
