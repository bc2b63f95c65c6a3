package loader

import "git.home.luguber.info/inful/apidocs/internal/apimodel"

func mustDesc(name string) *apimodel.PackageDescription {
	return &apimodel.PackageDescription{Name: name, Exports: map[string]apimodel.ExportedItem{}}
}
