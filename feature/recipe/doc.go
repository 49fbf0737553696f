// Package recipe models the image build recipe.
//
// A Recipe renders to a Dockerfile that installs the dependency manifest
// before adding the application file (the layer-ordering invariant), exposes
// the conventional contact port as metadata and bakes the launch contract in
// as the shell-form start command.
package recipe
