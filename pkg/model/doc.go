// Package model describes the base objects manipulated by the override manager.
//
// The object model is composed of:
//
//	Projects:
//	  A project is identified by a package name, without any version. It is the key
//	  for every record below.
//
//	Expression overrides:
//	  A raw Nix build expression (as generated by cabal2nix), stored under expr-overrides/.
//
//	Descriptor overrides:
//	  A source-repository descriptor (as output by nix-prefetch-git), stored under
//	  descriptor-overrides/. Only GitHub repositories are supported.
//
//	Options:
//	  Build flags (relax bounds, skip tests, skip docs) tagged on projects, stored under options/.
package model
