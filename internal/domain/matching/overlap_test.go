package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillOverlap_EmptySets(t *testing.T) {
	assert.Equal(t, 0.0, SkillOverlap(nil, []string{"python"}))
	assert.Equal(t, 0.0, SkillOverlap([]string{"python"}, nil))
	assert.Equal(t, 0.0, SkillOverlap(nil, nil))
}

func TestSkillOverlap_IdenticalSets(t *testing.T) {
	s := []string{"python", "sql", "aws"}
	assert.Equal(t, 1.0, SkillOverlap(s, s))
}

func TestSkillOverlap_PartialOverlap(t *testing.T) {
	got := SkillOverlap([]string{"python", "sql"}, []string{"python", "sql", "aws"})
	assert.InDelta(t, 2.0/3.0, got, 1e-9)
}

func TestSkillOverlap_Symmetric(t *testing.T) {
	a := []string{"go", "docker"}
	b := []string{"go", "kubernetes", "aws"}
	assert.Equal(t, SkillOverlap(a, b), SkillOverlap(b, a))
}

func TestSkillOverlap_Disjoint(t *testing.T) {
	assert.Equal(t, 0.0, SkillOverlap([]string{"java"}, []string{"python"}))
}

func TestSkillOverlap_DuplicatesCollapsed(t *testing.T) {
	got := SkillOverlap([]string{"python", "python", "sql"}, []string{"python", "sql", "sql", "aws"})
	assert.InDelta(t, 2.0/3.0, got, 1e-9)
}
