package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
)

// MaxScriptPoints caps the number of points a script may emit.
const MaxScriptPoints = 1_000_000

// RunLuaFile runs a generator script from a file.
func RunLuaFile(ctx context.Context, path string) (*Series, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading script")
	}
	s, err := RunLua(ctx, string(src))
	if err != nil {
		return nil, errors.Wrapf(err, "running %s", path)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// RunLua runs a generator script. The script calls point(x, y) for every
// sample and may call name(s) to label the series. Execution stops when
// ctx is done.
func RunLua(ctx context.Context, src string) (s *Series, err error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibraries(L)
	L.SetContext(ctx)

	s = &Series{}
	var limitErr error
	L.SetGlobal("point", L.NewFunction(func(L *lua.LState) int {
		if s.Len() >= MaxScriptPoints {
			limitErr = ErrTooManyPoints
			L.RaiseError("point limit of %d reached", MaxScriptPoints)
			return 0
		}
		s.Append(float64(L.CheckNumber(1)), float64(L.CheckNumber(2)))
		return 0
	}))
	L.SetGlobal("name", L.NewFunction(func(L *lua.LState) int {
		s.Name = L.CheckString(1)
		return 0
	}))

	defer recoverScript(&s, &err)

	if err := L.DoString(src); err != nil {
		if limitErr != nil {
			return nil, limitErr
		}
		return nil, errors.Wrap(err, "lua")
	}
	if s.Len() == 0 {
		return nil, ErrEmptySeries
	}
	s.Sort()
	return s, nil
}

// recoverScript turns a panic escaping the interpreter into an error and
// drops the partial series.
func recoverScript(s **Series, err *error) {
	if r := recover(); r != nil {
		*s = nil
		*err = errors.Errorf("lua panic: %v", r)
	}
}

// openSafeLibraries opens only libraries without file or process access.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
}
