// Package jetobsmc computes observables of particle jets for Monte Carlo
// validation: kinematics, jet shapes, substructure and groomed quantities,
// evaluated over whole samples and compared against reference samples.
//
// The module is organized as layered subpackages:
//
//	fourvec/       four-vectors under the (+,−,−,−) metric, η and φ policy, boosts
//	canon/         detector rows (pT, η, φ, pid) to four-vectors
//	jet/           immutable jets with cached constituent kinematics
//	kinematics/    jet-level kinematics, ΔR and pairwise ΔR matrices
//	shapes/        widths, radial moments, angularities, pT dispersion
//	substructure/  N-subjettiness proxies and energy correlators (C2, D2)
//	grooming/      SoftDrop proxies on the two hardest constituents
//	observable/    the named catalog with metadata and dependency resolution
//	batch/         parallel evaluation of many jets into a table
//	dataset/       JSON/YAML jet datasets
//	generate/      reproducible synthetic datasets
//	compare/       summary statistics, KS and χ² between samples, plots
//	store/         SQLite results store with embedded migrations
//
// The jetobs command (cmd/jetobs) wires them together:
//
//	jetobs generate sim.yaml -n 1000 --seed 7
//	jetobs eval sim.yaml --observables pt,mass,tau21 --format csv
//	jetobs compare sim.yaml ref.yaml --plot-dir plots/
//
// Quick example:
//
//	j, _ := jet.FromDetector([][]float64{{50, 0, 0, 211}, {30, 0.3, 0.1, 22}})
//	reg := observable.New()
//	vals, _ := reg.Evaluate(j, "pt", "jet_width", "c2")
package jetobsmc
