// Package modules is the home of every toolbox module. Each subpackage is a
// self-contained calculator, generator, or tracker exposing pure functions for
// its arithmetic and a Module type that implements domain.Module.
//
// A module run follows one shape: load or seed its JSON config inside the data
// folder, compute or converse, print the result, and persist a JSON record.
package modules
