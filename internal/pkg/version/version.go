// Package version 바이너리의 빌드 정보를 제공합니다.
//
// 버전, 커밋, 빌드 시각은 빌드 시점에 -ldflags로 주입됩니다.
//
//	go build -ldflags "-X github.com/melontron/cloud-engineering-deep-dive/internal/pkg/version.appVersion=v1.0.0"
//
// 주입되지 않은 값은 실행 파일의 VCS 메타데이터(debug.ReadBuildInfo)로 보강합니다.
// 이 값은 /v1 응답의 API 버전과는 별개입니다.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

const unknown = "unknown"

// -ldflags "-X"로 주입되는 값
var (
	appVersion    = ""
	gitCommitHash = ""
	gitTreeState  = ""
	buildDate     = ""
	buildNumber   = ""
)

var readBuildInfo = debug.ReadBuildInfo

// Info 빌드 정보입니다.
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	DirtyBuild  bool   `json:"dirty_build"`
}

var current = sync.OnceValue(func() Info {
	return enrich(Info{
		Version:     strings.TrimSpace(appVersion),
		Commit:      strings.TrimSpace(gitCommitHash),
		BuildDate:   strings.TrimSpace(buildDate),
		BuildNumber: strings.TrimSpace(buildNumber),
		DirtyBuild:  strings.EqualFold(strings.TrimSpace(gitTreeState), "dirty"),
	})
})

// Get 현재 바이너리의 빌드 정보를 반환합니다.
func Get() Info {
	return current()
}

// enrich 비어있는 필드를 런타임 정보와 VCS 메타데이터로 채웁니다.
func enrich(bi Info) Info {
	if bi.GoVersion == "" {
		bi.GoVersion = runtime.Version()
	}
	if bi.OS == "" {
		bi.OS = runtime.GOOS
	}
	if bi.Arch == "" {
		bi.Arch = runtime.GOARCH
	}

	if dbi, ok := readBuildInfo(); ok && dbi != nil {
		for _, s := range dbi.Settings {
			switch s.Key {
			case "vcs.revision":
				if bi.Commit == "" || bi.Commit == unknown {
					bi.Commit = s.Value
				}
			case "vcs.time":
				if bi.BuildDate == "" || bi.BuildDate == unknown {
					bi.BuildDate = s.Value
				}
			case "vcs.modified":
				if s.Value == "true" {
					bi.DirtyBuild = true
				}
			}
		}
		if bi.Version == "" && dbi.Main.Version != "" && dbi.Main.Version != "(devel)" {
			bi.Version = dbi.Main.Version
		}
	}

	if bi.Version == "" {
		bi.Version = unknown
	}
	if bi.Commit == "" {
		bi.Commit = unknown
	}
	return bi
}

// ToMap 구조화 로깅 필드로 사용할 수 있도록 맵으로 변환합니다.
func (i Info) ToMap() map[string]any {
	return map[string]any{
		"version":      i.Version,
		"commit":       i.Commit,
		"build_date":   i.BuildDate,
		"build_number": i.BuildNumber,
		"go_version":   i.GoVersion,
		"os":           i.OS,
		"arch":         i.Arch,
		"dirty_build":  i.DirtyBuild,
	}
}

// String "v1.0.0+dirty (commit: abc1234, build: 12, go: go1.24.0, linux/amd64)" 형태로 요약합니다.
func (i Info) String() string {
	if i.Version == "" {
		return unknown
	}

	v := i.Version
	if i.DirtyBuild {
		v += "+dirty"
	}

	var parts []string
	if i.Commit != "" && i.Commit != unknown {
		c := i.Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit: "+c)
	}
	if i.BuildNumber != "" {
		parts = append(parts, "build: "+i.BuildNumber)
	}
	if i.BuildDate != "" && i.BuildDate != unknown {
		parts = append(parts, "date: "+i.BuildDate)
	}
	if i.GoVersion != "" {
		parts = append(parts, "go: "+i.GoVersion)
	}
	if i.OS != "" && i.Arch != "" {
		parts = append(parts, i.OS+"/"+i.Arch)
	}

	if len(parts) == 0 {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, strings.Join(parts, ", "))
}
