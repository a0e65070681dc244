package translate

import (
	"os"
	"path/filepath"
	"runtime"
)

// ChromePathEnvironmentVariable overrides Chrome discovery.
const ChromePathEnvironmentVariable = "CHROME_PATH"

// ChromeLocation describes how the Chrome executable was found.
type ChromeLocation struct {
	Path       string
	FromEnv    bool
	Discovered bool
}

// ChromeCandidates lists well-known Chrome locations for the operating system.
func ChromeCandidates(operatingSystem string) []string {
	switch operatingSystem {
	case "windows":
		candidates := []string{
			`C:\Program Files\Google\Chrome\Application\chrome.exe`,
			`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
		}
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			candidates = append(candidates, filepath.Join(localAppData, "Google", "Chrome", "Application", "chrome.exe"))
		}
		return candidates
	case "darwin":
		return []string{
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
		}
	default:
		return []string{
			"/usr/bin/google-chrome",
			"/usr/bin/chromium-browser",
			"/usr/bin/chromium",
		}
	}
}

// LocateChrome resolves the Chrome executable: CHROME_PATH first, then the
// first existing candidate. When nothing is found the first candidate is
// returned with Discovered unset.
func LocateChrome() ChromeLocation {
	return locateChrome(os.Getenv(ChromePathEnvironmentVariable), ChromeCandidates(runtime.GOOS))
}

func locateChrome(environmentPath string, candidates []string) ChromeLocation {
	if environmentPath != "" {
		_, statError := os.Stat(environmentPath)
		return ChromeLocation{Path: environmentPath, FromEnv: true, Discovered: statError == nil}
	}
	for _, candidate := range candidates {
		if info, statError := os.Stat(candidate); statError == nil && !info.IsDir() {
			return ChromeLocation{Path: candidate, Discovered: true}
		}
	}
	if len(candidates) == 0 {
		return ChromeLocation{}
	}
	return ChromeLocation{Path: candidates[0]}
}
