package extractor

import (
	"regexp"
	"unicode/utf8"
)

var (
	// bannerPattern matches the banner line emitted by the kernel build
	// tooling at the top of every generated configuration
	bannerPattern = regexp.MustCompile(`(?m)^# Linux.* Kernel Configuration$`)
	// directivePattern matches enabled directives (CONFIG_FOO=y) and
	// explicitly-disabled-as-comment directives (# CONFIG_BAR=n)
	directivePattern = regexp.MustCompile(`(?m)^(CONFIG|# CONFIG)_\w+=(\d+|[ymn])$`)
)

// LooksLikeKernelConfig reports whether raw plausibly is a kernel build
// configuration: valid UTF-8 text containing at least one banner line and at
// least one configuration directive. Either alone is insufficient, which
// keeps text that merely mentions "Kernel Configuration" or has unrelated
// KEY=value lines from classifying as a configuration.
func LooksLikeKernelConfig(raw []byte) bool {
	if !utf8.Valid(raw) {
		return false
	}
	content := string(raw)

	return bannerPattern.MatchString(content) && directivePattern.MatchString(content)
}
