package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB cap for the test corpus

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addLanguageSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() || filepath.Ext(path) != ".vx" {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

func addLanguageSeeds(f *testing.F) {
	seeds := []string{
		"",
		"struct S {}\n",
		"@ViewAction(for: Feature.state)\nstruct FeatureView {\n    var store: Store\n}\n",
		"@ViewAction(for: App.Feature.state)\nclass FeatureView {\n    let store = Store()\n}\n",
		"extension App.FeatureView {\n    func body() {\n        store.send(.tap)\n    }\n}\n",
		"enum Action {\n    case tap\n    case setCount = 1\n}\n",
		"struct V {\n    func body() {\n        Button {\n            self.store.send(.view(.tap))\n        }\n    }\n}\n",
		"protocol P {\n    var store: Store\n}\n",
		"actor Worker {\n    var store: Store\n    struct Inner {\n        var store: Store\n    }\n}\n",
		"@ViewAction(for:\n",
		"struct {\n",
		"/* unterminated",
		"\"unterminated",
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
