package domain

// PluginUnit is a plugin directory discovered under the plugins root.
// Identity is the directory name; the manifest's own name field may
// disagree, which later validation layers flag.
type PluginUnit struct {
	Name string
	Dir  string
}

// SkillUnit is a skill bundle discovered under a plugin's skills
// directory. Identity is the (owning plugin, skill directory) pair.
type SkillUnit struct {
	Plugin string
	Name   string
	Dir    string
}

// Label returns the "plugin/skill" form used in report entries.
func (s SkillUnit) Label() string {
	return s.Plugin + "/" + s.Name
}
