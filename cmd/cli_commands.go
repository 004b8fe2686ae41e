package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fzft/go-intset/intset"
	"github.com/fzft/go-intset/resp"
)

type commandProc func(c *Cli, args []string) resp.Node

// cliCommand describes one shell command. minArgs and maxArgs count the
// arguments after the command name; maxArgs < 0 means unbounded.
type cliCommand struct {
	name    string
	params  string
	summary string
	group   string
	minArgs int
	maxArgs int
	proc    commandProc
}

func (cmd *cliCommand) usage() string {
	if cmd.params == "" {
		return strings.ToUpper(cmd.name)
	}
	return strings.ToUpper(cmd.name) + " " + cmd.params
}

func newCommandTable() map[string]*cliCommand {
	commands := []*cliCommand{
		{"add", "key value [value ...]", "Add values to a set", "set", 2, -1, (*Cli).addCommand},
		{"remove", "key value [value ...]", "Remove values from a set", "set", 2, -1, (*Cli).removeCommand},
		{"contains", "key value", "Test membership of a value", "set", 2, 2, (*Cli).containsCommand},
		{"size", "key", "Number of elements in a set", "set", 1, 1, (*Cli).sizeCommand},
		{"isempty", "key", "Test whether a set is empty", "set", 1, 1, (*Cli).isEmptyCommand},
		{"clear", "key", "Remove all elements, keeping the bucket count", "set", 1, 1, (*Cli).clearCommand},
		{"toarray", "key", "List every element", "set", 1, 1, (*Cli).toArrayCommand},
		{"show", "key", "Render a set as [a, b, c]", "set", 1, 1, (*Cli).showCommand},
		{"addall", "destination source", "Union: add every element of source", "bulk", 2, 2, (*Cli).addAllCommand},
		{"removeall", "destination source", "Difference: remove every element of source", "bulk", 2, 2, (*Cli).removeAllCommand},
		{"retainall", "destination source", "Intersection: keep only elements of source", "bulk", 2, 2, (*Cli).retainAllCommand},
		{"containsall", "key other", "Test whether key holds every element of other", "bulk", 2, 2, (*Cli).containsAllCommand},
		{"equals", "key other", "Test whether two sets hold the same elements", "bulk", 2, 2, (*Cli).equalsCommand},
		{"copy", "destination source", "Replace destination with the elements of source", "keyspace", 2, 2, (*Cli).copyCommand},
		{"del", "key [key ...]", "Delete sets", "keyspace", 1, -1, (*Cli).delCommand},
		{"keys", "", "List set names", "keyspace", 0, 0, (*Cli).keysCommand},
		{"info", "key", "Show size, bucket count and load factor", "keyspace", 1, 1, (*Cli).infoCommand},
		{"verify", "key", "Check the hash table invariants of a set", "keyspace", 1, 1, (*Cli).verifyCommand},
		{"help", "[command]", "Show help", "shell", 0, 1, (*Cli).helpCommand},
		{"quit", "", "Leave the shell", "shell", 0, 0, (*Cli).quitCommand},
	}

	table := make(map[string]*cliCommand, len(commands)+1)
	for _, cmd := range commands {
		table[cmd.name] = cmd
	}
	table["exit"] = table["quit"]
	return table
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

var errNotInteger = resp.Err("value is not an integer or out of range")

func (c *Cli) addCommand(args []string) resp.Node {
	values, err := parseInts(args[1:])
	if err != nil {
		return errNotInteger
	}
	s := c.lookupOrCreate(args[0])
	added := 0
	for _, v := range values {
		if s.Add(v) {
			added++
		}
	}
	return resp.Integer{Value: added}
}

func (c *Cli) removeCommand(args []string) resp.Node {
	values, err := parseInts(args[1:])
	if err != nil {
		return errNotInteger
	}
	s, ok := c.keyspace[args[0]]
	if !ok {
		return resp.Integer{Value: 0}
	}
	removed := 0
	for _, v := range values {
		if s.Remove(v) {
			removed++
		}
	}
	return resp.Integer{Value: removed}
}

func (c *Cli) containsCommand(args []string) resp.Node {
	v, err := strconv.Atoi(args[1])
	if err != nil {
		return errNotInteger
	}
	return resp.Boolean{Value: c.lookup(args[0]).Contains(v)}
}

func (c *Cli) sizeCommand(args []string) resp.Node {
	return resp.Integer{Value: c.lookup(args[0]).Len()}
}

func (c *Cli) isEmptyCommand(args []string) resp.Node {
	return resp.Boolean{Value: c.lookup(args[0]).IsEmpty()}
}

func (c *Cli) clearCommand(args []string) resp.Node {
	if s, ok := c.keyspace[args[0]]; ok {
		s.Clear()
	}
	return resp.OK
}

func (c *Cli) toArrayCommand(args []string) resp.Node {
	return resp.IntSet(c.lookup(args[0]).ToArray())
}

func (c *Cli) showCommand(args []string) resp.Node {
	return resp.SimpleString{Value: c.lookup(args[0]).String()}
}

func (c *Cli) addAllCommand(args []string) resp.Node {
	c.lookupOrCreate(args[0]).AddAll(c.lookup(args[1]))
	return resp.OK
}

func (c *Cli) removeAllCommand(args []string) resp.Node {
	if s, ok := c.keyspace[args[0]]; ok {
		s.RemoveAll(c.lookup(args[1]))
	}
	return resp.OK
}

func (c *Cli) retainAllCommand(args []string) resp.Node {
	if s, ok := c.keyspace[args[0]]; ok {
		s.RetainAll(c.lookup(args[1]))
	}
	return resp.OK
}

func (c *Cli) containsAllCommand(args []string) resp.Node {
	return resp.Boolean{Value: c.lookup(args[0]).ContainsAll(c.lookup(args[1]))}
}

func (c *Cli) equalsCommand(args []string) resp.Node {
	return resp.Boolean{Value: c.lookup(args[0]).Equals(c.lookup(args[1]))}
}

func (c *Cli) copyCommand(args []string) resp.Node {
	if args[0] == args[1] {
		return resp.OK
	}
	src := c.lookup(args[1])
	dst := c.lookupOrCreate(args[0])
	dst.Clear()
	dst.AddAll(src)
	return resp.OK
}

func (c *Cli) delCommand(args []string) resp.Node {
	deleted := 0
	for _, key := range args {
		if _, ok := c.keyspace[key]; ok {
			delete(c.keyspace, key)
			deleted++
		}
	}
	return resp.Integer{Value: deleted}
}

func (c *Cli) keysCommand(args []string) resp.Node {
	keys := make([]string, 0, len(c.keyspace))
	for key := range c.keyspace {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	reply := resp.Array{Elements: make([]resp.Node, len(keys))}
	for i, key := range keys {
		reply.Elements[i] = resp.BlobString{Value: key}
	}
	return reply
}

func (c *Cli) infoCommand(args []string) resp.Node {
	s := c.lookup(args[0])
	return resp.Array{Elements: []resp.Node{
		resp.SimpleString{Value: "size"}, resp.Integer{Value: s.Len()},
		resp.SimpleString{Value: "buckets"}, resp.Integer{Value: s.Cap()},
		resp.SimpleString{Value: "load_factor"}, resp.BlobString{Value: strconv.FormatFloat(s.LoadFactor(), 'f', 3, 64)},
		resp.SimpleString{Value: "max_load_factor"}, resp.BlobString{Value: strconv.FormatFloat(intset.MaxLoadFactor, 'f', 2, 64)},
	}}
}

func (c *Cli) verifyCommand(args []string) resp.Node {
	if err := c.lookup(args[0]).Verify(); err != nil {
		// error replies are single line
		return resp.Err(strings.ReplaceAll(err.Error(), "\n", " "))
	}
	return resp.OK
}

func (c *Cli) helpCommand(args []string) resp.Node {
	if len(args) == 1 {
		cmd, ok := c.commands[strings.ToLower(args[0])]
		if !ok {
			return resp.Err(fmt.Sprintf("unknown command '%s'", args[0]))
		}
		return resp.SimpleString{Value: fmt.Sprintf("%s - %s (group: %s)", cmd.usage(), cmd.summary, cmd.group)}
	}

	names := c.commandNames()
	reply := resp.Array{}
	for _, name := range names {
		cmd := c.commands[name]
		if cmd.name != name {
			continue // alias
		}
		reply.Elements = append(reply.Elements, resp.SimpleString{Value: cmd.usage() + " - " + cmd.summary})
	}
	return reply
}

func (c *Cli) quitCommand(args []string) resp.Node {
	c.quit = true
	return nil
}
