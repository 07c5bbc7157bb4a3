package platform_test

import (
	"context"
	"os"
	osexec "os/exec"
	"path/filepath"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	execpkg "github.com/smykla-skalski/aurcheck/internal/exec"
	"github.com/smykla-skalski/aurcheck/internal/platform"
)

var errExit1 = errors.New("exit status 1")

func notFound() execpkg.CommandResult {
	return execpkg.CommandResult{ExitCode: 1, Err: errExit1}
}

func found(path string) execpkg.CommandResult {
	return execpkg.CommandResult{Stdout: path + "\n"}
}

var _ = Describe("Prober", func() {
	var (
		ctrl       *gomock.Controller
		mockRunner *execpkg.MockCommandRunner
		ctx        context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRunner = execpkg.NewMockCommandRunner(ctrl)
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("DetectFamily", func() {
		writeOSRelease := func(content string) string {
			path := filepath.Join(GinkgoT().TempDir(), "os-release")
			Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())

			return path
		}

		It("detects Arch Linux", func() {
			path := writeOSRelease("NAME=\"Arch Linux\"\nID=arch\nBUILD_ID=rolling\n")
			prober := platform.NewProber(mockRunner, platform.WithOSReleasePath(path))

			Expect(prober.DetectFamily()).To(BeTrue())
		})

		It("detects derivatives through ID_LIKE", func() {
			path := writeOSRelease("ID=cachyos\nID_LIKE=arch\n")
			prober := platform.NewProber(mockRunner, platform.WithOSReleasePath(path))

			Expect(prober.DetectFamily()).To(BeTrue())
		})

		It("returns false for other distributions", func() {
			path := writeOSRelease("ID=debian\nVERSION_ID=\"12\"\n")
			prober := platform.NewProber(mockRunner, platform.WithOSReleasePath(path))

			Expect(prober.DetectFamily()).To(BeFalse())
		})

		It("returns false when the file is absent", func() {
			path := filepath.Join(GinkgoT().TempDir(), "missing")
			prober := platform.NewProber(mockRunner, platform.WithOSReleasePath(path))

			Expect(prober.DetectFamily()).To(BeFalse())
		})

		It("re-reads the file on every call", func() {
			path := writeOSRelease("ID=debian\n")
			prober := platform.NewProber(mockRunner, platform.WithOSReleasePath(path))
			Expect(prober.DetectFamily()).To(BeFalse())

			Expect(os.WriteFile(path, []byte("ID=arch\n"), 0o644)).To(Succeed())
			Expect(prober.DetectFamily()).To(BeTrue())
		})
	})

	Describe("DiscoverHelper", func() {
		var prober *platform.Prober

		BeforeEach(func() {
			prober = platform.NewProber(mockRunner)
		})

		It("returns the first helper found in priority order", func() {
			gomock.InOrder(
				mockRunner.EXPECT().Run(gomock.Any(), "which", "yay").Return(notFound()),
				mockRunner.EXPECT().Run(gomock.Any(), "which", "paru").Return(found("/usr/bin/paru")),
			)

			helper, ok := prober.DiscoverHelper(ctx)
			Expect(ok).To(BeTrue())
			Expect(helper).To(Equal("paru"))
		})

		It("stops at the highest priority helper", func() {
			mockRunner.EXPECT().Run(gomock.Any(), "which", "yay").Return(found("/usr/bin/yay"))

			helper, ok := prober.DiscoverHelper(ctx)
			Expect(ok).To(BeTrue())
			Expect(helper).To(Equal("yay"))
		})

		It("returns none when no helper resolves", func() {
			for _, h := range platform.DefaultHelpers() {
				mockRunner.EXPECT().Run(gomock.Any(), "which", h).Return(notFound())
			}

			helper, ok := prober.DiscoverHelper(ctx)
			Expect(ok).To(BeFalse())
			Expect(helper).To(BeEmpty())
		})

		It("returns none when which cannot be started", func() {
			mockRunner.EXPECT().Run(gomock.Any(), "which", "yay").Return(execpkg.CommandResult{
				ExitCode: -1,
				Err:      errors.Mark(errors.New("exec: \"which\": not found"), execpkg.ErrNotStarted),
			})

			helper, ok := prober.DiscoverHelper(ctx)
			Expect(ok).To(BeFalse())
			Expect(helper).To(BeEmpty())
		})

		It("bounds each probe with a deadline", func() {
			prober = platform.NewProber(mockRunner, platform.WithHelpers([]string{"paru"}))

			mockRunner.EXPECT().Run(gomock.Any(), "which", "paru").
				DoAndReturn(func(probeCtx context.Context, _ string, _ ...string) execpkg.CommandResult {
					_, hasDeadline := probeCtx.Deadline()
					Expect(hasDeadline).To(BeTrue())

					return found("/usr/bin/paru")
				})

			helper, ok := prober.DiscoverHelper(ctx)
			Expect(ok).To(BeTrue())
			Expect(helper).To(Equal("paru"))
		})

		It("moves on when a probe times out", func() {
			prober = platform.NewProber(mockRunner, platform.WithHelpers([]string{"yay", "paru"}))

			gomock.InOrder(
				mockRunner.EXPECT().Run(gomock.Any(), "which", "yay").Return(execpkg.CommandResult{
					ExitCode: -1,
					Err:      context.DeadlineExceeded,
				}),
				mockRunner.EXPECT().Run(gomock.Any(), "which", "paru").Return(found("/usr/bin/paru")),
			)

			helper, ok := prober.DiscoverHelper(ctx)
			Expect(ok).To(BeTrue())
			Expect(helper).To(Equal("paru"))
		})

		It("stops probing once the context is cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			helper, ok := prober.DiscoverHelper(cancelled)
			Expect(ok).To(BeFalse())
			Expect(helper).To(BeEmpty())
		})

		It("works against the real which binary", func() {
			if _, err := osexec.LookPath("which"); err != nil {
				Skip("which is not installed")
			}

			hostProber := platform.NewProber(
				execpkg.NewCommandRunner(platform.DefaultProbeTimeout),
				platform.WithHelpers([]string{"nonexistent-helper-xyz", "sh"}),
			)

			helper, ok := hostProber.DiscoverHelper(ctx)
			Expect(ok).To(BeTrue())
			Expect(helper).To(Equal("sh"))
		})
	})
})
