package selfupdate

import (
	"fmt"
	"runtime"
)

const binaryName = "fastpath"

// asset is the release archive for one platform and the binary inside it.
type asset struct {
	Archive string
	Binary  string
	Zip     bool
}

func currentAsset() (asset, error) {
	return assetFor(runtime.GOOS, runtime.GOARCH)
}

func assetFor(goos, goarch string) (asset, error) {
	if goos == "darwin" {
		return asset{Archive: binaryName + "_Darwin_all.tar.gz", Binary: binaryName}, nil
	}

	arch, ok := releaseArch[goarch]
	if !ok {
		return asset{}, fmt.Errorf("unsupported architecture: %s", goarch)
	}

	switch goos {
	case "linux":
		return asset{
			Archive: fmt.Sprintf("%s_Linux_%s.tar.gz", binaryName, arch),
			Binary:  binaryName,
		}, nil
	case "windows":
		return asset{
			Archive: fmt.Sprintf("%s_Windows_%s.zip", binaryName, arch),
			Binary:  binaryName + ".exe",
			Zip:     true,
		}, nil
	default:
		return asset{}, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

var releaseArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}
