// Package encode produces transport-safe base64 sibling files for orb
// sources. Shell scripts embedded in orb commands cannot carry raw Python
// source, so every script is shipped alongside as <file>.b64 and decoded at
// job runtime.
//
// Two passes run over the tree: a source pass that encodes every *.py file
// under the root, and a scripts pass that encodes every regular file under
// the scripts directory regardless of extension. Both passes skip virtualenv
// directories and already-encoded .b64 files, and both overwrite stale
// siblings without warning.
package encode

import (
	"encoding/base64"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Suffix is appended to each encoded sibling file
const Suffix = ".b64"

// Options selects the directories the two passes cover
type Options struct {
	// Root is the working tree searched for *.py files.
	Root string
	// ScriptsDir is the directory whose every regular file is encoded.
	ScriptsDir string
	// VenvDir is the directory name excluded from both passes.
	VenvDir string
}

// Result counts the files each pass encoded
type Result struct {
	SourceEncoded  int
	ScriptsEncoded int
}

// Run executes both encoding passes and returns per-pass counts
func Run(opts Options) (Result, error) {
	var res Result

	n, err := encodeTree(opts.Root, opts.VenvDir, func(path string) bool {
		return strings.HasSuffix(path, ".py")
	})
	if err != nil {
		return res, fmt.Errorf("encoding sources under %s: %w", opts.Root, err)
	}
	res.SourceEncoded = n

	n, err = encodeTree(opts.ScriptsDir, opts.VenvDir, func(string) bool {
		return true
	})
	if err != nil {
		return res, fmt.Errorf("encoding scripts under %s: %w", opts.ScriptsDir, err)
	}
	res.ScriptsEncoded = n

	return res, nil
}

// encodeTree walks root and writes a .b64 sibling for every regular file
// accepted by match. Virtualenv directories and encoded files are skipped.
func encodeTree(root, venvDir string, match func(string) bool) (int, error) {
	encoded := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if venvDir != "" && d.Name() == venvDir {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if strings.HasSuffix(path, Suffix) || !match(path) {
			return nil
		}

		if err := encodeFile(path); err != nil {
			return err
		}
		encoded++
		return nil
	})
	if err != nil {
		return encoded, err
	}

	return encoded, nil
}

func encodeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	sibling := path + Suffix
	content := base64.StdEncoding.EncodeToString(data)

	if err := os.WriteFile(sibling, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", sibling, err)
	}

	return nil
}
