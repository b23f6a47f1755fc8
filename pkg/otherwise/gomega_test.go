package otherwise_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import intentional for Gomega matcher DSL

	"github.com/ib-77/otherwise/pkg/otherwise"
)

func TestGomegaMatchersAsConditions(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	grade := func(score int) string {
		label, err := otherwise.Match[string](score).
			When(BeNumerically(">=", 90), "A").
			When(BeNumerically(">=", 75), "B").
			When(BeNumerically(">=", 50), "C").
			Otherwise("F")
		g.Expect(err).NotTo(HaveOccurred())
		return label
	}

	g.Expect(grade(95)).To(Equal("A"))
	g.Expect(grade(75)).To(Equal("B"))
	g.Expect(grade(60)).To(Equal("C"))
	g.Expect(grade(10)).To(Equal("F"))
}

func TestGomegaMatcherErrorStopsChain(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	// BeNumerically fails on a non-numeric subject
	m := otherwise.Match[string]("not a number").
		When(BeNumerically(">", 0), "positive").
		When(true, "fallthrough")

	g.Expect(m.Matched()).To(BeFalse())
	g.Expect(m.Err()).To(HaveOccurred())

	_, err := m.Otherwise("fallback")
	g.Expect(err).To(MatchError(m.Err()))
}

func TestGomegaComposedMatchers(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	type user struct {
		Name  string
		Roles []string
	}

	access := func(u user) string {
		label, _ := otherwise.Match[string](u).
			When(HaveField("Roles", ContainElement("admin")), "full").
			When(And(HaveField("Name", Not(BeEmpty())), HaveField("Roles", Not(BeEmpty()))), "limited").
			Otherwise("none")
		return label
	}

	g.Expect(access(user{Name: "root", Roles: []string{"admin"}})).To(Equal("full"))
	g.Expect(access(user{Name: "ann", Roles: []string{"viewer"}})).To(Equal("limited"))
	g.Expect(access(user{})).To(Equal("none"))
}

func TestGomegaAssertionsOnThrow(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	errDenied := errors.New("denied")

	_, err := otherwise.Match[string]("guest").
		WhenThrow("guest", errDenied).
		OtherwiseThrow(errors.New("unknown"))

	g.Expect(err).To(MatchError(errDenied))
}
