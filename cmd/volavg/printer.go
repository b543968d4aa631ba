package main

import (
	"io"

	"github.com/npillmayer/volsum/readout"
	"github.com/spf13/cobra"
)

// printer outputs readouts either to the console or as HTML fragments.
type printer struct {
	w       io.Writer
	html    bool
	title   string
	console *readout.Console
}

func newPrinter(cmd *cobra.Command, html bool, title string) *printer {
	p := &printer{w: cmd.OutOrStdout(), html: html, title: title}
	if !html {
		p.console = readout.NewConsole()
		p.console.W = p.w
	}
	return p
}

func (p *printer) print(r *readout.Readout, u readout.Update) error {
	stats := r.Stats(u)
	if p.html {
		if err := readout.RenderHTML(p.w, p.title, stats); err != nil {
			return err
		}
		_, err := io.WriteString(p.w, "\n")
		return err
	}
	if err := p.console.Print(stats); err != nil {
		return err
	}
	_, err := io.WriteString(p.w, "\n")
	return err
}
