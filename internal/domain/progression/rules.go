package progression

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed rules.toml
var rulesTOML string

type skillRules struct {
	Classes map[string][]string `toml:"classes"`
}

var classSkills = mustLoadSkillRules()

func mustLoadSkillRules() map[string]map[string]bool {
	var rules skillRules
	if _, err := toml.Decode(rulesTOML, &rules); err != nil {
		panic(fmt.Sprintf("cannot decode skill rules: %v", err))
	}

	result := map[string]map[string]bool{}
	for className, skillNames := range rules.Classes {
		skills := map[string]bool{}
		for _, name := range skillNames {
			skills[name] = true
		}
		result[className] = skills
	}

	return result
}

// AllowedSkill reports whether the class may take the named skill. A class
// absent from the rule table may take any skill.
func AllowedSkill(className, skillName string) bool {
	skills, ok := classSkills[className]
	if !ok {
		return true
	}

	return skills[skillName]
}
