package liner_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func createTestFiles(t *testing.T, content ...string) (string, []string) {
	dir := t.TempDir()
	names := make([]string, 0, len(content))

	for _, c := range content {
		fileName := filepath.Join(dir, fmt.Sprintf("test_%d", time.Now().UnixNano()))

		err := os.WriteFile(fileName, []byte(c), 0o600)
		require.NoError(t, err, "file must be written")

		names = append(names, fileName)

		time.Sleep(time.Nanosecond)
	}

	return filepath.Join(dir, "test_*"), names
}
