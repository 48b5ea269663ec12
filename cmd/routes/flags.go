package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/theoremus-urban-solutions/routes/route"
)

// numberFlag is an optional integer flag; it stays absent unless set.
type numberFlag struct{ n route.Number }

func (f *numberFlag) String() string { return f.n.String() }

func (f *numberFlag) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer %q", s)
	}
	f.n = route.NumberOf(v)
	return nil
}

// common holds the flags shared by every command.
type common struct {
	data    string
	metrics string
	verbose bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.data, "D", "", "The data file name")
	fs.StringVar(&c.data, "data", "", "The data file name")
	fs.StringVar(&c.metrics, "metrics", "", "Write Prometheus metrics to this textfile")
	fs.BoolVar(&c.verbose, "v", false, "Log progress to stderr")
}

// stringFlag registers a flag under a short and a long name.
func stringFlag(fs *flag.FlagSet, p *string, short, long, value, usage string) {
	fs.StringVar(p, short, value, usage)
	fs.StringVar(p, long, value, usage)
}
