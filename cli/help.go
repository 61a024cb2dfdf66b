// Copyright (c) 2024-2025, The WiFi-Sim Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package cli

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

type help struct {
	termWidth uint
	commands  map[string]string
}

var commandHelp = map[string]string{
	"signal":     "signal <x> <y> - estimated signal (dBm) of the strongest transmitter at plan position (x, y), including wall obstruction and antenna pattern.",
	"throughput": "throughput <x> <y> [n|ac|ax|be [20|40|80|160]] - estimated data rate (Mbps) at plan position (x, y); standard and channel width default to the console's settings.",
	"range":      "range <tx> [minDbm] - free-space distance at which transmitter <tx> drops to minDbm (default -75 dBm). Walls are not considered.",
	"walls":      "walls - number of walls in the loaded plan.",
	"txs":        "txs - list the loaded transmitters and their radio parameters.",
	"scale":      "scale - the plan's pixel-per-meter scale.",
	"help":       "help [command] - show help for one command, or this list.",
	"exit":       "exit - leave the console.",
}

// newHelp creates the help table, sized to the user's terminal when stdout
// is one.
func newHelp() help {
	h := help{
		termWidth: 80,
		commands:  commandHelp,
	}
	fdTerm := int(os.Stdout.Fd()) // Windows platform requires cast to int.
	if term.IsTerminal(fdTerm) {
		if width, _, err := term.GetSize(fdTerm); err == nil && width > 20 {
			h.termWidth = uint(width)
		}
	}
	return h
}

func (h *help) print(w io.Writer, topic string) {
	if topic != "" {
		if text, ok := h.commands[topic]; ok {
			fmt.Fprintln(w, wordwrap.WrapString(text, h.termWidth))
			return
		}
		fmt.Fprintf(w, "unknown command %q\n", topic)
	}
	names := make([]string, 0, len(h.commands))
	for name := range h.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(w, wordwrap.WrapString(h.commands[name], h.termWidth))
	}
}

func (h *help) printShort(w io.Writer) {
	fmt.Fprintln(w, "commands: signal, throughput, range, walls, txs, scale, help, exit")
}
