package writer

import (
	"os"
	"path/filepath"

	"github.com/Erdk/luxor/log"
)

// Write each mapping entry to its own file below dir. Entries with no path
// or no body are skipped. The first write error aborts the remaining writes;
// already written files are not cleaned up.
func WriteFiles(m *Mapping, dir string) error {
	logger := log.New("writer")

	return m.Each(func(id string, art Artifact) error {
		if art.Path == "" || art.Body == nil {
			logger.Warningf("skipping export entry %q: no destination or body", id)
			return nil
		}

		data, err := art.Body.Bytes()
		if err != nil {
			return err
		}

		dst := filepath.Join(dir, art.Path)
		if err = os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}
		if err = os.WriteFile(dst, data, 0644); err != nil {
			return err
		}

		logger.Infof("wrote %q (%d bytes)", dst, len(data))
		return nil
	})
}
