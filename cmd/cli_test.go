package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fzft/go-intset/resp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCli(t *testing.T, output string) (*Cli, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	cli, err := NewCli(&Config{Prompt: "intset> ", Output: output, DebugChecks: true}, &buf, nil)
	require.NoError(t, err)
	return cli, &buf
}

func TestParseOutputMode(t *testing.T) {
	mode, err := ParseOutputMode("RAW")
	require.NoError(t, err)
	assert.Equal(t, OutputRaw, mode)

	mode, err = ParseOutputMode("resp")
	require.NoError(t, err)
	assert.Equal(t, OutputResp, mode)

	_, err = ParseOutputMode("json")
	assert.Error(t, err)
}

func TestNewCliDefaultsToRawWhenNotTerminal(t *testing.T) {
	cli, _ := newTestCli(t, "")
	assert.Equal(t, OutputRaw, cli.output)

	_, err := NewCli(&Config{Output: "xml"}, &bytes.Buffer{}, nil)
	assert.Error(t, err)
}

func TestExecSetCommands(t *testing.T) {
	cli, _ := newTestCli(t, "standard")

	assert.Equal(t, resp.Integer{Value: 3}, cli.Execute("add s 3 13 23"))
	assert.Equal(t, resp.Integer{Value: 0}, cli.Execute("ADD s 13"))
	assert.Equal(t, resp.Integer{Value: 3}, cli.Execute("size s"))
	assert.Equal(t, resp.Boolean{Value: true}, cli.Execute("contains s 13"))
	assert.Equal(t, resp.Integer{Value: 1}, cli.Execute("remove s 13 99"))
	assert.Equal(t, resp.Boolean{Value: false}, cli.Execute("contains s 13"))
	assert.Equal(t, resp.Integer{Value: 2}, cli.Execute("size s"))
	assert.Equal(t, resp.SimpleString{Value: "[23, 3]"}, cli.Execute("show s"))
	assert.Equal(t, resp.IntSet([]int{23, 3}), cli.Execute("toarray s"))
	assert.Equal(t, resp.OK, cli.Execute("clear s"))
	assert.Equal(t, resp.Boolean{Value: true}, cli.Execute("isempty s"))
	assert.Equal(t, resp.OK, cli.Execute("verify s"))
}

func TestExecMissingKeyIsEmpty(t *testing.T) {
	cli, _ := newTestCli(t, "")

	assert.Equal(t, resp.Integer{Value: 0}, cli.Execute("size nope"))
	assert.Equal(t, resp.Boolean{Value: true}, cli.Execute("isempty nope"))
	assert.Equal(t, resp.Integer{Value: 0}, cli.Execute("remove nope 1"))
	assert.Equal(t, resp.OK, cli.Execute("clear nope"))
	assert.Equal(t, resp.Array{Elements: []resp.Node{}}, cli.Execute("keys"))
}

func TestExecBulkCommands(t *testing.T) {
	cli, _ := newTestCli(t, "")
	cli.Execute("add a 1 2 3 4")
	cli.Execute("add b 3 4 5")

	assert.Equal(t, resp.Boolean{Value: false}, cli.Execute("containsall a b"))
	assert.Equal(t, resp.OK, cli.Execute("copy u a"))
	assert.Equal(t, resp.OK, cli.Execute("addall u b"))
	assert.Equal(t, resp.Integer{Value: 5}, cli.Execute("size u"))
	assert.Equal(t, resp.Boolean{Value: true}, cli.Execute("containsall u b"))

	assert.Equal(t, resp.OK, cli.Execute("copy i a"))
	assert.Equal(t, resp.OK, cli.Execute("retainall i b"))
	cli.Execute("add want 3 4")
	assert.Equal(t, resp.Boolean{Value: true}, cli.Execute("equals i want"))

	assert.Equal(t, resp.OK, cli.Execute("copy d a"))
	assert.Equal(t, resp.OK, cli.Execute("removeall d b"))
	assert.Equal(t, resp.SimpleString{Value: "[1, 2]"}, cli.Execute("show d"))

	assert.Equal(t, resp.Integer{Value: 4}, cli.Execute("size a"), "copy and bulk ops leave the source alone")
}

func TestExecKeyspace(t *testing.T) {
	cli, _ := newTestCli(t, "")
	cli.Execute("add b 1")
	cli.Execute("add a 1")

	assert.Equal(t, resp.Array{Elements: []resp.Node{
		resp.BlobString{Value: "a"},
		resp.BlobString{Value: "b"},
	}}, cli.Execute("keys"))
	assert.Equal(t, resp.Integer{Value: 1}, cli.Execute("del a c"))
	assert.Equal(t, resp.Integer{Value: 0}, cli.Execute("size a"))
}

func TestExecInfo(t *testing.T) {
	cli, _ := newTestCli(t, "")
	cli.Execute("add s 0 1 2 3 4 5 6 7")

	info := cli.Execute("info s").(resp.Array)
	require.Len(t, info.Elements, 8)
	assert.Equal(t, resp.Integer{Value: 8}, info.Elements[1])
	assert.Equal(t, resp.Integer{Value: 20}, info.Elements[3])
	assert.Equal(t, resp.BlobString{Value: "0.400"}, info.Elements[5])
}

func TestExecErrors(t *testing.T) {
	cli, _ := newTestCli(t, "")

	assert.Equal(t, resp.Err("unknown command 'frob'"), cli.Execute("frob s"))
	assert.Equal(t, resp.Err("wrong number of arguments for 'add' command"), cli.Execute("add s"))
	assert.Equal(t, resp.Err("wrong number of arguments for 'contains' command"), cli.Execute("contains s 1 2"))
	assert.Equal(t, errNotInteger, cli.Execute("add s 1 x"))
	assert.Equal(t, errNotInteger, cli.Execute("contains s 1.5"))
	assert.Equal(t, resp.Integer{Value: 0}, cli.Execute("size s"), "a rejected add does not create the key")
	assert.Nil(t, cli.Execute("   "))
}

func TestExecHelp(t *testing.T) {
	cli, _ := newTestCli(t, "")

	all := cli.Execute("help").(resp.Array)
	assert.Len(t, all.Elements, 20)

	assert.Equal(t, resp.SimpleString{Value: "ADD key value [value ...] - Add values to a set (group: set)"}, cli.Execute("help add"))
	assert.Equal(t, resp.Err("unknown command 'frob'"), cli.Execute("help frob"))
}

func TestPrintModes(t *testing.T) {
	cli, buf := newTestCli(t, "standard")
	require.NoError(t, cli.Print(cli.Execute("add s 3 13")))
	require.NoError(t, cli.Print(cli.Execute("toarray s")))
	require.NoError(t, cli.Print(cli.Execute("bogus")))
	assert.Equal(t, "(integer) 2\n1) (integer) 13\n2) (integer) 3\n(error) ERR unknown command 'bogus'\n", buf.String())

	cli, buf = newTestCli(t, "raw")
	require.NoError(t, cli.Print(cli.Execute("add s 3 13")))
	require.NoError(t, cli.Print(cli.Execute("contains s 3")))
	assert.Equal(t, "2\n1\n", buf.String())

	cli, buf = newTestCli(t, "resp")
	require.NoError(t, cli.Print(cli.Execute("add s 3 13")))
	require.NoError(t, cli.Print(cli.Execute("toarray s")))
	assert.Equal(t, ":2\r\n~2\r\n:13\r\n:3\r\n", buf.String())
}

func TestRunPipe(t *testing.T) {
	cli, buf := newTestCli(t, "")
	in := strings.NewReader("add s 1 2 3\n\nsize s\nquit\nsize s\n")

	require.NoError(t, cli.Run(in))
	assert.True(t, cli.Quit())
	assert.Equal(t, "3\n3\n", buf.String())
}
