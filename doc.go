// Package lcfg loads configuration files into typed configuration trees.
//
// A file is read, scanned into a flat stream of dotted keys and raw values, and
// assembled into a tree of maps, lists and string leaves:
//
//	root, err := lcfg.Load("/etc/app/app.conf")
//	if err != nil {
//	    return err
//	}
//
//	hosts, access := root.GetList("upstream.hosts")
//	if access != tree.FoundOK {
//	    return access.Err("upstream.hosts")
//	}
//
// NewModule wires the same loading into an Fx application and publishes the tree as
// a named *tree.Node.
package lcfg
