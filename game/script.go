package game

import (
	"fmt"
	"os"

	"github.com/dop251/goja"
)

// ScriptPolicy is a spawn policy written in JavaScript and run with goja.
// The script must define shouldSpawn(ctx) and return a truthy value to spawn.
// ctx carries frame, enemies, projectiles, fieldWidth, fieldHeight and random.
//
// One runtime is kept for the policy's lifetime so scripts may hold state
// across frames. Not safe for concurrent use.
type ScriptPolicy struct {
	vm          *goja.Runtime
	shouldSpawn goja.Callable
}

// NewScriptPolicy compiles a spawn script
func NewScriptPolicy(code string) (*ScriptPolicy, error) {
	vm := goja.New()

	if _, err := vm.RunString(code); err != nil {
		return nil, fmt.Errorf("script parse error: %w", err)
	}

	fn, ok := goja.AssertFunction(vm.Get("shouldSpawn"))
	if !ok {
		return nil, fmt.Errorf("script must define a 'shouldSpawn' function")
	}

	return &ScriptPolicy{vm: vm, shouldSpawn: fn}, nil
}

// LoadScriptPolicy reads and compiles a spawn script from disk
func LoadScriptPolicy(path string) (*ScriptPolicy, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spawn script: %w", err)
	}
	p, err := NewScriptPolicy(string(code))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ShouldSpawn calls the script's shouldSpawn function
func (p *ScriptPolicy) ShouldSpawn(ctx SpawnContext) (bool, error) {
	arg := p.vm.ToValue(map[string]any{
		"frame":       ctx.Frame,
		"enemies":     ctx.Enemies,
		"projectiles": ctx.Projectiles,
		"fieldWidth":  ctx.FieldWidth,
		"fieldHeight": ctx.FieldHeight,
		"random":      ctx.Random,
	})

	result, err := p.shouldSpawn(goja.Undefined(), arg)
	if err != nil {
		return false, fmt.Errorf("shouldSpawn failed: %w", err)
	}
	return result.ToBoolean(), nil
}
