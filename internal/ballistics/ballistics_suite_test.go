package ballistics_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestBallistics(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Ballistics Suite")
}
