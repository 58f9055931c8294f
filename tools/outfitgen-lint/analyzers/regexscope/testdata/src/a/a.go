package a

import "regexp"

var namePattern = regexp.MustCompile(`createMonsterType\("([^"]+)"\)`)

var rules = struct {
	outfit *regexp.Regexp
}{
	outfit: regexp.MustCompile(`outfit\s*=\s*{([^}]+)}`),
}

var initialized *regexp.Regexp

func init() {
	initialized = regexp.MustCompile(`lookType`)
}

func bad(text string) string {
	re := regexp.MustCompile(`\d+`) // want "regexp.MustCompile called inside bad"
	return re.FindString(text)
}

func badLoop(texts []string) {
	for _, text := range texts {
		re, _ := regexp.Compile(`\d+`) // want "regexp.Compile called inside badLoop"
		_ = re.FindAllString(text, -1)
	}
}

var badClosure = func(text string) bool {
	return regexp.MustCompilePOSIX(`[a-z]+`).MatchString(text) // want "regexp.MustCompilePOSIX called inside func literal"
}

func good(text string) string {
	_ = rules.outfit
	_ = initialized
	return namePattern.FindString(text)
}
