// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"cogentcore.org/spatial/animate"
	"cogentcore.org/spatial/coord"
	"cogentcore.org/spatial/viewport"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/mattn/go-shellwords"
)

// MinSimilarity is the minimum name similarity for a variant name in a
// select command to match a variant that is not named exactly.
var MinSimilarity = 0.6

// Command is one line of a viewer script.
type Command struct {

	// Name is the command name, the first word of the line.
	Name string

	// Args are the remaining words of the line.
	Args []string

	// Line is the line number in the script, starting at 1.
	Line int
}

func (cm Command) String() string {
	return strings.Join(append([]string{cm.Name}, cm.Args...), " ")
}

// ParseScript parses a script into commands, one per line. Words are
// split the way a shell splits them, and everything after a # that
// starts a word is a comment.
func ParseScript(r io.Reader) ([]Command, error) {
	var cmds []Command
	scan := bufio.NewScanner(r)
	ln := 0
	for scan.Scan() {
		ln++
		line := stripComment(scan.Text())
		if strings.TrimSpace(line) == "" {
			continue
		}
		words, err := shellwords.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", ln, err)
		}
		if len(words) == 0 {
			continue
		}
		cmds = append(cmds, Command{Name: words[0], Args: words[1:], Line: ln})
	}
	return cmds, scan.Err()
}

// stripComment removes a # comment that begins a word.
func stripComment(line string) string {
	for i, r := range line {
		if r == '#' && (i == 0 || line[i-1] == ' ' || line[i-1] == '\t') {
			return line[:i]
		}
	}
	return line
}

// Run executes the commands in order, writing the output of state
// commands to w. Input commands are queued and take effect on the next
// frame; wait runs frames. A frame is always run at the end if input is
// still queued. Errors in a command stop the script.
func (vw *Viewer) Run(cmds []Command, w io.Writer) error {
	for _, cm := range cmds {
		if err := vw.Exec(cm, w); err != nil {
			return fmt.Errorf("line %d: %s: %w", cm.Line, cm, err)
		}
	}
	if vw.Scheduler.Pending() {
		vw.Step()
	}
	return nil
}

// Exec executes one command.
func (vw *Viewer) Exec(cm Command, w io.Writer) error {
	sc := vw.Scheduler
	args := cm.Args
	switch cm.Name {
	case "home":
		sc.Post(coord.Event{Type: coord.HomePressed})
	case "next":
		sc.Post(coord.Event{Type: coord.NextVariantPressed})
	case "narration":
		sc.Post(coord.Event{Type: coord.NarrationToggled})
	case "reset":
		sc.Post(coord.Event{Type: coord.ResetRequested})
	case "select":
		if len(args) != 1 {
			return errors.New("usage: select <index|name>")
		}
		i, err := vw.VariantIndex(args[0])
		if err != nil {
			return err
		}
		sc.Post(coord.Event{Type: coord.VariantSelected, Index: i})
	case "look":
		if len(args) != 2 {
			return errors.New("usage: look <dx> <dy>")
		}
		dx, err := strconv.ParseFloat(args[0], 32)
		if err != nil {
			return err
		}
		dy, err := strconv.ParseFloat(args[1], 32)
		if err != nil {
			return err
		}
		sc.PostLook(math32.Vec2(float32(dx), float32(dy)))
	case "enter", "leave":
		if len(args) != 1 {
			return fmt.Errorf("usage: %s <control>", cm.Name)
		}
		typ := events.MouseEnter
		if cm.Name == "leave" {
			typ = events.MouseLeave
		}
		sc.PostPointer(animate.PointerEvent{Type: typ, Control: args[0]})
	case "wait":
		n := 1
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("invalid tick count %q", args[0])
			}
		}
		vw.Wait(n)
	case "place":
		return vw.place(args)
	case "state":
		vw.Describe(w)
	default:
		return fmt.Errorf("unknown command %q", cm.Name)
	}
	return nil
}

// place handles place <anchor> <placement> [x y].
func (vw *Viewer) place(args []string) error {
	if len(args) != 2 && len(args) != 4 {
		return errors.New("usage: place <anchor> <placement> [x y]")
	}
	an := vw.Anchor(args[0])
	if an == nil {
		return fmt.Errorf("unknown anchor %q", args[0])
	}
	var pl viewport.Placements
	if err := pl.SetString(args[1]); err != nil {
		return err
	}
	if pl != viewport.Custom {
		if len(args) == 4 {
			return fmt.Errorf("coordinates are only used with %v", viewport.Custom)
		}
		an.SetPlacement(pl)
		return nil
	}
	if len(args) != 4 {
		return fmt.Errorf("%v needs x and y", viewport.Custom)
	}
	x, err := strconv.ParseFloat(args[2], 32)
	if err != nil {
		return err
	}
	y, err := strconv.ParseFloat(args[3], 32)
	if err != nil {
		return err
	}
	an.SetCustomPosition(float32(x), float32(y))
	return nil
}

// VariantIndex returns the index of the variant given as an index or a
// name. A name that does not match exactly resolves to the most similar
// variant name, if it is similar enough. An index is returned as is, so
// that the coordinator can reject it if it is out of range.
func (vw *Viewer) VariantIndex(s string) (int, error) {
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	best, bestSim := -1, 0.0
	lev := metrics.NewLevenshtein()
	for i, name := range vw.Config.Variants {
		if strings.EqualFold(name, s) {
			return i, nil
		}
		sim := strutil.Similarity(strings.ToLower(s), strings.ToLower(name), lev)
		if sim > bestSim {
			best, bestSim = i, sim
		}
	}
	if best < 0 || bestSim < MinSimilarity {
		return -1, fmt.Errorf("no variant named %q", s)
	}
	return best, nil
}
