package device

import (
	"sdrbox/core"
	"sdrbox/game"
	"sdrbox/protocol"
)

// Scoreboard is the part of the game the console can see and reset
type Scoreboard interface {
	ResetHighScore()
	State() game.State
}

var (
	consoleMachine    *Machine
	consoleScoreboard Scoreboard
	consoleShot       *Screenshot
)

// InitCommands registers the device console commands. Call after
// core.InitCoreCommands and before the dictionary is built.
func InitCommands(m *Machine, board Scoreboard, shot *Screenshot) {
	consoleMachine = m
	consoleScoreboard = board
	consoleShot = shot

	core.RegisterCommand("mode_advance", "", handleModeAdvance)
	core.RegisterCommand("hiscore_reset", "", handleHiscoreReset)
	core.RegisterCommand("dump_events", "", handleDumpEvents)
	core.RegisterCommand("set_debug", "enable=%c", handleSetDebug)
	core.RegisterCommand("screenshot", "offset=%u count=%c", handleScreenshot)
	core.RegisterCommand("get_status", "", handleGetStatus)

	core.RegisterResponse("screenshot_data", "offset=%u total=%u data=%*s")
	core.RegisterResponse("status", "mode=%c commits=%u in_play=%c score=%u hiscore=%u lives=%c level=%c")

	core.RegisterConstant("SCREEN_WIDTH", uint32(game.ScreenWidth))
	core.RegisterConstant("SCREEN_HEIGHT", uint32(game.ScreenHeight))
	core.RegisterConstant("SCREENSHOT_CHUNK", uint32(ScreenshotChunk))
	core.RegisterConstant("MODES", "IDLE,SENDING,RECEIVING,GAME")
}

// handleModeAdvance takes the same path as the mode button interrupt
func handleModeAdvance(_ *[]byte) error {
	consoleMachine.RequestAdvance()
	return nil
}

func handleHiscoreReset(_ *[]byte) error {
	consoleScoreboard.ResetHighScore()
	return nil
}

func handleDumpEvents(_ *[]byte) error {
	core.DumpEvents()
	return nil
}

func handleSetDebug(data *[]byte) error {
	enable, err := protocol.DecodeVLQUint(data)
	if err != nil {
		return err
	}
	core.SetDebugEnabled(enable != 0)
	return nil
}

// handleScreenshot captures a new frame when offset is 0, then returns
// the requested slice of the compressed stream
func handleScreenshot(data *[]byte) error {
	offset, err := protocol.DecodeVLQUint(data)
	if err != nil {
		return err
	}
	count, err := protocol.DecodeVLQUint(data)
	if err != nil {
		return err
	}

	if offset == 0 {
		consoleShot.Capture()
	}
	chunk := consoleShot.Chunk(offset, uint8(count))
	total := consoleShot.Len()

	core.SendResponse("screenshot_data", func(output protocol.OutputBuffer) {
		protocol.EncodeVLQUint(output, offset)
		protocol.EncodeVLQUint(output, total)
		protocol.EncodeVLQBytes(output, chunk)
	})
	return nil
}

func handleGetStatus(_ *[]byte) error {
	s := consoleScoreboard.State()
	inPlay := uint32(0)
	if s.InPlay {
		inPlay = 1
	}
	mode := uint32(consoleMachine.Mode())
	commits := consoleMachine.Commits()

	core.SendResponse("status", func(output protocol.OutputBuffer) {
		protocol.EncodeVLQUint(output, mode)
		protocol.EncodeVLQUint(output, commits)
		protocol.EncodeVLQUint(output, inPlay)
		protocol.EncodeVLQUint(output, s.Score)
		protocol.EncodeVLQUint(output, s.HighScore)
		protocol.EncodeVLQUint(output, uint32(s.Lives))
		protocol.EncodeVLQUint(output, uint32(s.Level))
	})
	return nil
}
