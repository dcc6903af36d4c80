package tui

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/rivergale/cheatdeck/internal/config"
)

func emulatorCommand(cfg *config.Config, romPath string) *exec.Cmd {
	args := append(append([]string{}, cfg.Emulator.Args...), romPath)
	return exec.Command(cfg.Emulator.Command, args...)
}

func runCommandStreaming(writer io.Writer, cmd *exec.Cmd) error {
	_, _ = fmt.Fprintf(writer, "$ %s %s\n", cmd.Path, strings.Join(cmd.Args[1:], " "))

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go streamReader(writer, stdout, &wg)
	go streamReader(writer, stderr, &wg)
	wg.Wait()

	return cmd.Wait()
}

func streamReader(writer io.Writer, reader io.Reader, wg *sync.WaitGroup) {
	defer wg.Done()
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		_, _ = fmt.Fprintln(writer, scanner.Text())
	}
}
