package ballistics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trajsim/internal/ballistics"
)

var models = []ballistics.Model{ballistics.Vacuum{}, ballistics.Drag{}}

var paramSets = map[string]ballistics.Params{
	"reference":   ballistics.DefaultParams(),
	"steep":       withAngle(ballistics.DefaultParams(), 80),
	"shallow":     withAngle(ballistics.DefaultParams(), 10),
	"heavy drag":  withDrag(ballistics.DefaultParams(), 0.05),
	"no drag":     withDrag(ballistics.DefaultParams(), 0),
	"fine step":   withDt(ballistics.DefaultParams(), 0.001),
	"coarse step": withDt(ballistics.DefaultParams(), 0.25),
}

func withAngle(p ballistics.Params, deg float64) ballistics.Params {
	p.Angle = ballistics.Radians(deg)
	return p
}

func withDrag(p ballistics.Params, c float64) ballistics.Params {
	p.DragCoeff = c
	return p
}

func withDt(p ballistics.Params, dt float64) ballistics.Params {
	p.Dt = dt
	return p
}

var _ = Describe("Trajectory invariants", func() {
	for name, p := range paramSets {
		for _, model := range models {
			Context(model.Name()+" with "+name+" parameters", func() {
				var traj ballistics.Trajectory

				BeforeEach(func() {
					var err error
					traj, err = model.Trajectory(p)
					Expect(err).NotTo(HaveOccurred())
					Expect(traj).NotTo(BeEmpty())
				})

				It("starts at the origin at t=0", func() {
					Expect(traj[0]).To(Equal(ballistics.Sample{}))
				})

				It("has strictly increasing time", func() {
					for i := 1; i < len(traj); i++ {
						Expect(traj[i].T).To(BeNumerically(">", traj[i-1].T))
					}
				})

				It("never retains a sample below ground", func() {
					for _, s := range traj {
						Expect(s.Y).To(BeNumerically(">=", 0))
					}
				})

				It("summarizes from the last sample", func() {
					s, err := ballistics.Summarize(traj)
					Expect(err).NotTo(HaveOccurred())
					Expect(s.Range).To(Equal(traj.Last().X))
					Expect(s.FlightTime).To(Equal(traj.Last().T))
					Expect(s.MaxHeight).To(BeNumerically(">=", traj.Last().Y))
				})
			})
		}
	}
})

var _ = Describe("Drag versus vacuum", func() {
	DescribeTable("drag strictly reduces range and height",
		func(p ballistics.Params) {
			cmp, err := ballistics.Compare(p, ballistics.Vacuum{}, ballistics.Drag{})
			Expect(err).NotTo(HaveOccurred())
			Expect(cmp.DragSummary.Range).To(BeNumerically("<", cmp.VacuumSummary.Range))
			Expect(cmp.DragSummary.MaxHeight).To(BeNumerically("<", cmp.VacuumSummary.MaxHeight))
		},
		Entry("reference", ballistics.DefaultParams()),
		Entry("steep", withAngle(ballistics.DefaultParams(), 75)),
		Entry("shallow", withAngle(ballistics.DefaultParams(), 15)),
		Entry("light drag", withDrag(ballistics.DefaultParams(), 0.0005)),
	)

	It("matches the vacuum model within one step when drag is zero", func() {
		p := withDrag(ballistics.DefaultParams(), 0)
		cmp, err := ballistics.Compare(p, ballistics.Vacuum{}, ballistics.Drag{})
		Expect(err).NotTo(HaveOccurred())

		vx, _ := p.Velocity()
		Expect(cmp.DragSummary.Range).To(BeNumerically("~", cmp.VacuumSummary.Range, vx*p.Dt+1e-9))
		Expect(cmp.DragSummary.FlightTime).To(BeNumerically("~", cmp.VacuumSummary.FlightTime, p.Dt+1e-9))
	})

	It("reproduces the reference vacuum summary", func() {
		cmp, err := ballistics.Compare(ballistics.DefaultParams(), ballistics.Vacuum{}, ballistics.Drag{})
		Expect(err).NotTo(HaveOccurred())

		Expect(cmp.VacuumSummary.Range).To(BeNumerically("~", 254.8, 0.5))
		Expect(cmp.VacuumSummary.MaxHeight).To(BeNumerically("~", 63.7, 0.1))
		Expect(cmp.VacuumSummary.FlightTime).To(BeNumerically("~", 7.2, 1e-9))
		Expect(cmp.DragSummary.FlightTime).To(BeNumerically("<", cmp.VacuumSummary.FlightTime))
	})
})

var _ = Describe("Parameter validation", func() {
	DescribeTable("rejects before integrating",
		func(m, dt float64) {
			_, err := ballistics.NewParams(9.81, m, 0.008, 50, math.Pi/4, dt)
			Expect(err).To(MatchError(ballistics.ErrConfiguration))
		},
		Entry("zero mass", 0.0, 0.02),
		Entry("negative mass", -0.15, 0.02),
		Entry("zero dt", 0.15, 0.0),
		Entry("negative dt", 0.15, -0.02),
	)
})
