// SPDX-License-Identifier: MIT

package observable

import (
	"github.com/katalvlaran/jetobsmc/grooming"
	"github.com/katalvlaran/jetobsmc/jet"
	"github.com/katalvlaran/jetobsmc/kinematics"
	"github.com/katalvlaran/jetobsmc/shapes"
	"github.com/katalvlaran/jetobsmc/substructure"
)

// Complexity labels.
const (
	costConst  = "O(1)"
	costLinear = "O(N)"
	costSort   = "O(N log N)"
	costPair   = "O(N^2)"
	costTriple = "O(N^3)"
)

var (
	angular     = []string{"eta", "phi", "pt"}
	correlators = []string{"e2", "e3"}
	hardestPair = []string{BaseConstituents, "pt"}
)

func single(name string, cat Category, irc bool, desc, cost string, f Func, deps ...string) Observable {
	return Observable{
		Metadata: Metadata{
			Name:        name,
			IRCSafe:     irc,
			Category:    cat,
			Description: desc,
			DependsOn:   deps,
			Complexity:  cost,
			Arity:       1,
		},
		compute: f,
	}
}

// catalog lists every observable with o bound into the parameterised ones.
func catalog(o Options) []Observable {
	sd := o.softDrop

	return []Observable{
		// kinematic
		single("pt", Kinematic, true, "Transverse momentum", costConst, kinematics.Pt, BaseFourVector),
		single("mass", Kinematic, true, "Invariant mass", costConst, kinematics.Mass, BaseFourVector),
		single("eta", Kinematic, true, "Pseudorapidity", costConst, kinematics.Eta, BaseFourVector),
		single("phi", Kinematic, true, "Azimuthal angle", costConst, kinematics.Phi, BaseFourVector),
		single("energy", Kinematic, true, "Jet energy", costConst, kinematics.Energy, BaseFourVector),
		single("rest_frame_residual", Kinematic, true, "Summed three-momentum after the rest-frame boost",
			costLinear, (*jet.Jet).RestFrameMomentumResidual, BaseConstituents, "mass"),
		{
			Metadata: Metadata{
				Name:        "delta_r",
				IRCSafe:     true,
				Category:    Kinematic,
				Description: "Jet angular distance",
				DependsOn:   []string{"eta", "phi"},
				Complexity:  costConst,
				Arity:       2,
			},
		},

		// shape
		single("multiplicity", Shape, false, "Number of constituents", costConst,
			func(j *jet.Jet) float64 { return float64(shapes.Multiplicity(j)) }, BaseConstituents),
		single("constituent_pt_sum", Shape, true, "Scalar sum of constituent pT", costLinear,
			shapes.ConstituentPtSum, BaseConstituents),
		single("leading_constituent_pt", Shape, false, "Largest constituent pT", costLinear,
			shapes.LeadingConstituentPt, BaseConstituents),
		single("leading_pt_fraction", Shape, false, "Leading constituent pT over the scalar pT sum", costLinear,
			shapes.LeadingPtFraction, "leading_constituent_pt", "constituent_pt_sum"),
		single("jet_width", Shape, true, "pT-weighted radial width", costLinear, shapes.Width, angular...),
		single("girth", Shape, true, "Alias of jet_width", costLinear, shapes.Girth, "jet_width"),
		single("radial_moment_2", Shape, true, "Second pT-weighted radial moment", costLinear,
			shapes.RadialMoment2, angular...),
		single("radial_moment_3", Shape, true, "Third pT-weighted radial moment", costLinear,
			shapes.RadialMoment3, angular...),
		single("lha", Shape, true, "Les Houches angularity (kappa=1, beta=0.5)", costLinear, shapes.LHA, angular...),
		single("thrust_angularity", Shape, true, "Thrust-like angularity (kappa=1, beta=2)", costLinear,
			shapes.ThrustAngularity, angular...),
		single("ptd_angularity", Shape, false, "pT_D-like angularity (kappa=2, beta=0)", costLinear,
			shapes.PtDAngularity, "pt"),
		single("pt_dispersion", Shape, false, "sqrt(sum pT^2) / sum pT", costLinear, shapes.PtDispersion, "pt"),

		// substructure
		single("tau1", Substructure, false, "One-axis N-subjettiness proxy (top-pT axes)", costSort,
			substructure.Tau1, angular...),
		single("tau2", Substructure, false, "Two-axis N-subjettiness proxy (top-pT axes)", costSort,
			substructure.Tau2, angular...),
		single("tau3", Substructure, false, "Three-axis N-subjettiness proxy (top-pT axes)", costSort,
			substructure.Tau3, angular...),
		single("tau21", Substructure, false, "tau2 / tau1", costSort, substructure.Tau21, "tau1", "tau2"),
		single("tau32", Substructure, false, "tau3 / tau2", costSort, substructure.Tau32, "tau2", "tau3"),
		single("e2", Substructure, true, "Two-point energy correlation", costPair, substructure.E2, angular...),
		single("e3", Substructure, true, "Three-point energy correlation", costTriple, substructure.E3, angular...),
		single("c2", Substructure, true, "e3 / e2^2", costTriple, substructure.C2, correlators...),
		single("d2", Substructure, true, "e3 / e2^3", costTriple, substructure.D2, correlators...),

		// grooming proxies
		single("softdrop_zg", Substructure, false, "SoftDrop zg proxy on the two hardest constituents", costSort,
			grooming.Zg, hardestPair...),
		single("softdrop_rg", Substructure, false, "SoftDrop rg proxy on the two hardest constituents", costSort,
			grooming.Rg, append([]string{"eta", "phi"}, hardestPair...)...),
		single("softdrop_pass_fraction", Substructure, false, "SoftDrop condition on the two hardest constituents",
			costSort, func(j *jet.Jet) float64 { return grooming.PassFraction(j, sd) }, "softdrop_zg", "softdrop_rg"),
		single("groomed_pair_mass", Substructure, false, "Invariant mass of the two hardest constituents", costSort,
			grooming.GroomedPairMass, hardestPair...),
	}
}
