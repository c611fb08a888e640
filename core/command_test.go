package core

import (
	"testing"

	"sdrbox/protocol"
)

func TestCommandRegistry(t *testing.T) {
	registry := NewCommandRegistry()

	var called bool
	handler := func(data *[]byte) error {
		called = true
		return nil
	}

	id := registry.Register("mode_advance", "", handler)
	if id != 0 {
		t.Errorf("Expected first command to have ID 0, got %d", id)
	}

	cmd, ok := registry.GetCommand(id)
	if !ok {
		t.Fatal("Failed to retrieve registered command")
	}
	if cmd.Name != "mode_advance" {
		t.Errorf("Expected command name 'mode_advance', got '%s'", cmd.Name)
	}

	var data []byte
	if err := registry.Dispatch(id, &data); err != nil {
		t.Errorf("Dispatch failed: %v", err)
	}
	if !called {
		t.Error("Command handler was not called")
	}

	if err := registry.Dispatch(999, &data); err != ErrUnknownCommand {
		t.Errorf("Expected ErrUnknownCommand, got %v", err)
	}
}

func TestCommandRegistrySequentialIDs(t *testing.T) {
	registry := NewCommandRegistry()

	id1 := registry.Register("command1", "arg1=%u", func(data *[]byte) error { return nil })
	id2 := registry.Register("command2", "arg2=%u", func(data *[]byte) error { return nil })
	id3 := registry.Register("command3", "arg3=%u", func(data *[]byte) error { return nil })

	if id1 != 0 || id2 != 1 || id3 != 2 {
		t.Errorf("Command IDs not sequential: %d, %d, %d", id1, id2, id3)
	}

	again := registry.Register("command2", "other=%u", nil)
	if again != id2 {
		t.Errorf("Expected re-registration to return %d, got %d", id2, again)
	}
	if registry.Count() != 3 {
		t.Errorf("Expected 3 entries, got %d", registry.Count())
	}
}

func TestResponsesAreNotDispatched(t *testing.T) {
	registry := NewCommandRegistry()
	id := registry.Register("log", "msg=%*s", nil)

	var data []byte
	if err := registry.Dispatch(id, &data); err != ErrUnknownCommand {
		t.Errorf("Expected ErrUnknownCommand for a response, got %v", err)
	}

	commands, responses := registry.GetCommandsAndResponses()
	if len(commands) != 0 {
		t.Errorf("Expected no commands, got %v", commands)
	}
	if responses["log msg=%*s"] != int(id) {
		t.Errorf("Expected log response with ID %d, got %v", id, responses)
	}
}

func TestCommandWithArguments(t *testing.T) {
	registry := NewCommandRegistry()

	var offset, count uint32
	handler := func(data *[]byte) error {
		var err error
		if offset, err = protocol.DecodeVLQUint(data); err != nil {
			return err
		}
		count, err = protocol.DecodeVLQUint(data)
		return err
	}

	id := registry.Register("screenshot", "offset=%u count=%c", handler)

	output := protocol.NewScratchOutput()
	protocol.EncodeVLQUint(output, 12345)
	protocol.EncodeVLQUint(output, 40)
	data := output.Result()

	if err := registry.Dispatch(id, &data); err != nil {
		t.Errorf("Dispatch failed: %v", err)
	}
	if offset != 12345 {
		t.Errorf("Expected offset 12345, got %d", offset)
	}
	if count != 40 {
		t.Errorf("Expected count 40, got %d", count)
	}
}
