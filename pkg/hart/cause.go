package hart

// Cause identifies a trap's reason: an exception code paired with a
// flag marking it as an interrupt rather than a synchronous
// exception. The encoded form sets the top bit of the width-sized
// cause CSR for interrupts, per the machine-ISA cause code table —
// carried in full even though this single-hart, non-timed core never
// raises an interrupt on its own.
type Cause struct {
	Code      uint
	Interrupt bool
}

// Encode packs the cause into its width-sized CSR representation.
func (c Cause) Encode(width uint) uint64 {
	code := uint64(c.Code)
	if !c.Interrupt {
		return code
	}
	return (uint64(1) << (width - 1)) | code
}

// Exception causes (synchronous traps).
var (
	InstructionAddressMisaligned = Cause{Code: 0}
	InstructionAccessFault       = Cause{Code: 1}
	IllegalInstruction           = Cause{Code: 2}
	Breakpoint                   = Cause{Code: 3}
	LoadAddressMisaligned        = Cause{Code: 4}
	LoadAccessFault              = Cause{Code: 5}
	StoreAddressMisaligned       = Cause{Code: 6}
	StoreAccessFault             = Cause{Code: 7}
	EnvironmentCallFromUMode     = Cause{Code: 8}
	EnvironmentCallFromSMode     = Cause{Code: 9}
	EnvironmentCallFromMMode     = Cause{Code: 11}
	InstructionPageFault         = Cause{Code: 12}
	LoadPageFault                = Cause{Code: 13}
	StorePageFault               = Cause{Code: 15}
	Reset                        = Cause{Code: 0}
)

// Interrupt causes, named for completeness though this core never
// delivers one — the reset vector and exception() entry point accept
// any Cause regardless of source.
var (
	UserSoftwareInterrupt      = Cause{Code: 0, Interrupt: true}
	SupervisorSoftwareInterrupt = Cause{Code: 1, Interrupt: true}
	MachineSoftwareInterrupt   = Cause{Code: 3, Interrupt: true}
	UserTimerInterrupt         = Cause{Code: 4, Interrupt: true}
	SupervisorTimerInterrupt   = Cause{Code: 5, Interrupt: true}
	MachineTimerInterrupt      = Cause{Code: 7, Interrupt: true}
	UserExternalInterrupt      = Cause{Code: 8, Interrupt: true}
	SupervisorExternalInterrupt = Cause{Code: 9, Interrupt: true}
	MachineExternalInterrupt   = Cause{Code: 11, Interrupt: true}
)
