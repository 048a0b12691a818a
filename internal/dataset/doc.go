// Package dataset loads the numeric series rangescope plots.
//
// A series can come from a CSV file with two numeric columns, from a Lua
// script that emits points, or from one of the built-in generators:
//
//	s, err := dataset.LoadCSV("prices.csv")
//	s, err := dataset.RunLuaFile(ctx, "wave.lua")
//	s, err := dataset.Generate("sine", 500, 1)
//
// Lua scripts run in a sandbox with only the base, table, string and math
// libraries and a point(x, y) function:
//
//	for i = 0, 200 do
//	    point(i, math.sin(i / 10))
//	end
package dataset
