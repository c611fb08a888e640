package core

import (
	"bytes"
	"sort"
	"sync"

	"sdrbox/tinycompress"
)

// Dictionary is the self-description the host downloads with identify:
// version, constants and the message table, as zlib-wrapped JSON.
type Dictionary struct {
	mu         sync.RWMutex
	constants  map[string]interface{}
	commandReg *CommandRegistry
	version    string
	cached     []byte
}

var globalDictionary = NewDictionary(globalRegistry)

// NewDictionary creates a dictionary over a command registry
func NewDictionary(cmdReg *CommandRegistry) *Dictionary {
	return &Dictionary{
		constants:  make(map[string]interface{}),
		commandReg: cmdReg,
		version:    "sdrbox-0.1.0",
	}
}

// GetGlobalDictionary returns the dictionary served by identify
func GetGlobalDictionary() *Dictionary {
	return globalDictionary
}

// RegisterConstant registers a constant in the global dictionary
func RegisterConstant(name string, value interface{}) {
	globalDictionary.AddConstant(name, value)
}

// AddConstant adds a constant and drops any cached encoding
func (d *Dictionary) AddConstant(name string, value interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.constants[name] = value
	d.cached = nil
}

// BuildDictionary encodes and compresses the dictionary.
// Call after every command has been registered.
func (d *Dictionary) BuildDictionary() {
	// Registry lock first, then ours, never the other way round
	commands, responses := d.commandReg.GetCommandsAndResponses()

	d.mu.Lock()
	defer d.mu.Unlock()

	jsonData := d.buildJSONLocked(commands, responses)

	var buf bytes.Buffer
	w := tinycompress.NewWriter(&buf)
	if _, err := w.Write(jsonData); err != nil {
		DebugPrintln("[DICT] compression write failed: " + err.Error())
		return
	}
	if err := w.Close(); err != nil {
		DebugPrintln("[DICT] compression close failed: " + err.Error())
		return
	}
	d.cached = buf.Bytes()
	DebugPrintln("[DICT] " + Itoa(len(jsonData)) + " bytes, " + Itoa(len(d.cached)) + " compressed")
}

// Generate returns the compressed dictionary, building it on first use
func (d *Dictionary) Generate() []byte {
	d.mu.RLock()
	data := d.cached
	d.mu.RUnlock()
	if data != nil {
		return data
	}
	d.BuildDictionary()
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cached
}

func (d *Dictionary) buildJSONLocked(commands, responses map[string]int) []byte {
	result := make([]byte, 0, 1024)

	result = append(result, `{"version":"`...)
	result = append(result, d.version...)
	result = append(result, `","config":{`...)

	names := make([]string, 0, len(d.constants))
	for name := range d.constants {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		if i > 0 {
			result = append(result, ',')
		}
		result = append(result, '"')
		result = append(result, name...)
		result = append(result, `":"`...)
		result = append(result, valueToString(d.constants[name])...)
		result = append(result, '"')
	}

	result = append(result, `},"commands":{`...)
	result = appendIDTable(result, commands)
	result = append(result, `},"responses":{`...)
	result = appendIDTable(result, responses)
	result = append(result, "}}"...)
	return result
}

// appendIDTable writes "format":id pairs ordered by id
func appendIDTable(result []byte, table map[string]int) []byte {
	formats := make([]string, 0, len(table))
	for format := range table {
		formats = append(formats, format)
	}
	sort.Slice(formats, func(i, j int) bool {
		return table[formats[i]] < table[formats[j]]
	})
	for i, format := range formats {
		if i > 0 {
			result = append(result, ',')
		}
		result = append(result, '"')
		result = append(result, format...)
		result = append(result, `":`...)
		result = append(result, Itoa(table[format])...)
	}
	return result
}

// GetChunk returns a copy of count bytes of the compressed dictionary
// starting at offset. Past the end it returns an empty slice.
func (d *Dictionary) GetChunk(offset uint32, count uint8) []byte {
	data := d.Generate()
	if offset >= uint32(len(data)) {
		return []byte{}
	}

	end := offset + uint32(count)
	if end > uint32(len(data)) {
		end = uint32(len(data))
	}

	// Copy: the transport may still be sending it when the cache is rebuilt
	chunk := make([]byte, end-offset)
	copy(chunk, data[offset:end])
	return chunk
}
