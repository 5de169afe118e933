// This file is part of uBot.
//
// uBot is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// uBot is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with uBot.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/ubot/curated"
	"github.com/jetsetilly/ubot/hardware/buzzer"
	"github.com/jetsetilly/ubot/hardware/motor"
	"github.com/jetsetilly/ubot/hardware/turtlehat"
	"github.com/jetsetilly/ubot/logger"
	"github.com/jetsetilly/ubot/modalflag"
	"github.com/jetsetilly/ubot/prefs"
	"github.com/jetsetilly/ubot/statsview"
	"github.com/jetsetilly/ubot/turtle"
	"github.com/jetsetilly/ubot/turtle/bytecode"
	"github.com/jetsetilly/ubot/userinput"
	"github.com/jetsetilly/ubot/userinput/easyterm"
	"github.com/jetsetilly/ubot/wavwriter"
)

func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. the return value
// is the exit status.
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "DISASM", "DUMP")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "PLAY":
		err = play(md)

	case "DISASM":
		err = disasm(md)

	case "DUMP":
		err = dump(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// the flags shared by every mode that creates a turtle.
type turtleFlags struct {
	prefsFile *string
	prefs     *string
	log       *bool
}

func addTurtleFlags(md *modalflag.Modes) turtleFlags {
	return turtleFlags{
		prefsFile: md.AddString("prefsfile", "", "preferences file to use in place of the default"),
		prefs:     md.AddString("prefs", "", "preference overrides. for example: \"turtle.moveLength::500; turtle.log::false\""),
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// preferences are loaded with any overrides from the command line. the
// overrides are not saved unless the preferences are saved explicitly.
func (tf turtleFlags) preferences() (*turtle.Preferences, error) {
	if *tf.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	prefs.PushCommandLineStack(*tf.prefs)
	p, err := turtle.NewPreferences(*tf.prefsFile)
	unused := prefs.PopCommandLineStack()
	if err != nil {
		return nil, err
	}
	if unused != "" {
		fmt.Printf("* unused preferences: %s\n", unused)
	}

	return p, nil
}

// the audio flags shared by RUN and PLAY.
type audioFlags struct {
	wav     *string
	samples *[]string
}

func addAudioFlags(md *modalflag.Modes) audioFlags {
	return audioFlags{
		wav:     md.AddString("wav", "", "record buzzer output to wav file"),
		samples: md.AddList("sample", "replace a beep with a wav or mp3 file. for example: beepEnd=fanfare.mp3"),
	}
}

// synth creates a buzzer that renders to the wav file if one has been
// requested. the returned function must be called to finalise the wav file.
func (af audioFlags) synth(realtime bool) (*buzzer.Synth, func() error, error) {
	for _, s := range *af.samples {
		kv := strings.SplitN(s, "=", 2)
		if len(kv) != 2 {
			return nil, nil, curated.Errorf("sample: %v", fmt.Sprintf("expected KEY=FILE (%s)", s))
		}
		key := buzzer.Key(strings.TrimSpace(kv[0]))
		if !buzzer.Known(key) {
			return nil, nil, curated.Errorf(buzzer.UnknownKey, key)
		}
		smp, err := buzzer.LoadSample(strings.TrimSpace(kv[1]))
		if err != nil {
			return nil, nil, err
		}
		buzzer.RegisterSample(key, smp)
	}

	if *af.wav == "" {
		return buzzer.NewSynth(nil, realtime), func() error { return nil }, nil
	}

	aw, err := wavwriter.New(*af.wav)
	if err != nil {
		return nil, nil, err
	}

	return buzzer.NewSynth(aw, realtime), aw.EndMixing, nil
}

func run(md *modalflag.Modes) (rerr error) {
	md.NewMode()

	tf := addTurtleFlags(md)
	af := addAudioFlags(md)
	keymapFile := md.AddString("keymap", "", "toml file mapping keys to buttons")
	speed := md.AddFloat64("speed", 1.0, "speed of the simulated motor")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	save := md.AddBool("save", false, "save preferences on exit")

	md.AdditionalHelp("an initial program can be given as an argument")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := tf.preferences()
	if err != nil {
		return err
	}

	km := userinput.DefaultKeymap()
	if *keymapFile != "" {
		km, err = userinput.LoadKeymap(*keymapFile)
		if err != nil {
			return err
		}
	}

	syn, endMixing, err := af.synth(true)
	if err != nil {
		return err
	}
	defer func() {
		if err := endMixing(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	if *stats {
		stop := statsview.Launch(os.Stdout)
		defer stop()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	trt := turtle.NewTurtle(prf, motor.NewSimulated(ctx, os.Stdout, *speed), syn)
	if len(md.RemainingArgs()) == 1 {
		if err := trt.Load([]byte(md.GetArg(0))); err != nil {
			return err
		}
	}

	board := &turtlehat.Board{}
	hat, err := turtlehat.NewHAT(board, board, prf.HATParams())
	if err != nil {
		return err
	}
	period := time.Duration(prf.CheckPeriod.Value()) * time.Millisecond
	poller := turtlehat.NewPoller(hat, period, trt)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = poller.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		_ = trt.Serve(ctx)
	}()
	defer wg.Wait()
	defer cancel()

	term, err := easyterm.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	// keys pressed before the panel was ready are not button presses
	if err := term.Flush(); err != nil {
		logger.Log(trt, "panel", err.Error())
	}
	if err := term.CBreakMode(); err != nil {
		return err
	}
	defer term.CanonicalMode()

	term.Print("%s", km.Help())
	term.Print("q to quit\n")

	// a button is held for long enough for the debouncer to accept it
	hold := time.Duration(prf.PressLength.Value()+prf.MaxError.Value()+1) * period
	pn := userinput.NewPanel(km, board, hold)
	pn.OnKey = func(key string, code turtlehat.ButtonCode) {
		logger.Logf(trt, "panel", "%s: %s", key, code)
	}

	done := make(chan error, 1)
	go func() {
		done <- pn.Run(term)
	}()

	select {
	case <-ctx.Done():
	case err = <-done:
		if err != nil {
			return err
		}
	}

	if *save {
		return prf.Save()
	}

	return nil
}

func play(md *modalflag.Modes) (rerr error) {
	md.NewMode()

	tf := addTurtleFlags(md)
	af := addAudioFlags(md)
	speed := md.AddFloat64("speed", 0.0, "speed of the simulated motor. zero for no waiting")

	md.AdditionalHelp("the program is given as an argument. for example: \"F(R*3)\"")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := tf.preferences()
	if err != nil {
		return err
	}

	syn, endMixing, err := af.synth(*speed > 0)
	if err != nil {
		return err
	}
	defer func() {
		if err := endMixing(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	trt := turtle.NewTurtle(prf, motor.NewSimulated(ctx, md.Output, *speed), syn)
	if err := trt.Load([]byte(md.GetArg(0))); err != nil {
		return err
	}

	trt.Press(turtlehat.StartStop)
	trt.RunPending(ctx)

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	md.AdditionalHelp("the program is given as an argument")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program required for %s mode", md)
	case 1:
		return bytecode.Disassemble(md.Output, []byte(md.GetArg(0)))
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

// dump feeds a sequence of button codes to a turtle and prints the resulting
// state. programs started by a button are played to completion against a
// motor journal before the next button, and the moves are listed.
func dump(md *modalflag.Modes) error {
	md.NewMode()

	tf := addTurtleFlags(md)
	memvizFile := md.AddString("memviz", "", "write graphviz description of the turtle to file")

	md.AdditionalHelp("buttons are given as a comma separated list. for example: \"forward,forward,repeat,add\"")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("button list required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	var codes []turtlehat.ButtonCode
	for _, s := range strings.Split(md.GetArg(0), ",") {
		c, err := turtlehat.ParseButtonCode(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		codes = append(codes, c)
	}

	prf, err := tf.preferences()
	if err != nil {
		return err
	}

	jrn := &motor.Journal{}
	trt := turtle.NewTurtle(prf, jrn, &buzzer.Journal{})
	for _, c := range codes {
		trt.Press(c)
		trt.RunPending(context.Background())
	}

	fmt.Fprint(md.Output, trt.String())
	for _, m := range jrn.Moves() {
		fmt.Fprintf(md.Output, "move: %s\n", m)
	}
	fmt.Fprintln(md.Output)
	if err := bytecode.Disassemble(md.Output, trt.ToPlay()); err != nil {
		return err
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, trt)
	}

	return nil
}
