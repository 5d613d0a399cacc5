package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wakaNats = `045-Champ Final-01
1,101,3,Smith,Ann,A,2:10.100
2,102,4,Jones,Bo,B,2:11.200
3,103,1,Brown,Cy,,2:12.300
4,104,2,Green,Di,C,2:13.400
5,105,5,White,Ed,D,2:14.500
`

func newSourceTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for dir, content := range map[string]string{
		"2017 WakaNats": wakaNats,
		"2015 Champs":   "001-Open Final-01\n1,1,1,Old,Timer,Z,1:00.0\n",
	} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, dir, "race.lif"), []byte(content), 0o644))
	}
	return root
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cliApp := newCLIApp(&out)
	cliApp.ErrWriter = &bytes.Buffer{}
	base := []string{"lif-standings", "--config", filepath.Join(t.TempDir(), "absent.yaml")}
	err := cliApp.Run(append(base, args...))
	return out.String(), err
}

func TestComputeCommand(t *testing.T) {
	root := newSourceTree(t)
	output := filepath.Join(t.TempDir(), "results.csv")

	out, err := run(t, "--source", root, "--min-year", "2016", "--max-year", "2018", "compute", "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Results saved to "+output)
	assert.Contains(t, out, "Races found")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "Club Name,Points\nA,10\nB,7\nC,3\nD,1\n", string(data))
}

func TestComputeCommand_RequiresSource(t *testing.T) {
	t.Setenv("LIF_SOURCE_DIR", "")
	_, err := run(t, "compute")
	require.Error(t, err)
}

func TestComputeCommand_RejectsInvertedRange(t *testing.T) {
	_, err := run(t, "--source", newSourceTree(t), "--min-year", "2019", "--max-year", "2016", "compute")
	require.Error(t, err)
}

func TestPreviewCommand(t *testing.T) {
	out, err := run(t, "--source", newSourceTree(t), "preview")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"10    points  Z",
		"10    points  A",
		"7     points  B",
		"3     points  C",
		"1     points  D",
	}, lines)
}

func TestInspectCommand(t *testing.T) {
	root := newSourceTree(t)
	out, err := run(t, "inspect", filepath.Join(root, "2017 WakaNats", "race.lif"))
	require.NoError(t, err)
	assert.Contains(t, out, "6 lines, 1 races")
	assert.Contains(t, out, "Race 1: 045-Champ Final-01")
	assert.Contains(t, out, "Place  Club  Points")

	_, err = run(t, "inspect")
	require.Error(t, err)
}

func TestCheckFolderCommand(t *testing.T) {
	out, err := run(t, "--min-year", "2016", "check-folder", "2017 WakaNats", "2015 Champs", "NoYearHere")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "2016..*")
	assert.Regexp(t, `^2017 WakaNats\s+2017\s+included$`, lines[1])
	assert.Regexp(t, `^2015 Champs\s+2015\s+excluded$`, lines[2])
	assert.Regexp(t, `^NoYearHere\s+-\s+excluded$`, lines[3])
}
