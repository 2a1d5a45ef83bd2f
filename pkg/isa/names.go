package isa

// kindNames maps every Kind to its canonical RISC-V mnemonic, used by
// Kind.String and by trace/disassembly output.
var kindNames = map[Kind]string{
	Invalid: "invalid",
	Lui: "lui",
	Auipc: "auipc",
	Jal: "jal",
	Jalr: "jalr",
	Beq: "beq",
	Bne: "bne",
	Blt: "blt",
	Bge: "bge",
	Bltu: "bltu",
	Bgeu: "bgeu",
	Lb: "lb",
	Lh: "lh",
	Lw: "lw",
	Lbu: "lbu",
	Lhu: "lhu",
	Sb: "sb",
	Sh: "sh",
	Sw: "sw",
	Addi: "addi",
	Slti: "slti",
	Sltiu: "sltiu",
	Xori: "xori",
	Ori: "ori",
	Andi: "andi",
	Slli: "slli",
	Srli: "srli",
	Srai: "srai",
	Add: "add",
	Sub: "sub",
	Sll: "sll",
	Slt: "slt",
	Sltu: "sltu",
	Xor: "xor",
	Srl: "srl",
	Sra: "sra",
	Or: "or",
	And: "and",
	Fence: "fence",
	FenceI: "fence.i",
	Ecall: "ecall",
	Ebreak: "ebreak",
	Lwu: "lwu",
	Ld: "ld",
	Sd: "sd",
	Addiw: "addiw",
	Slliw: "slliw",
	Srliw: "srliw",
	Sraiw: "sraiw",
	Addw: "addw",
	Subw: "subw",
	Sllw: "sllw",
	Srlw: "srlw",
	Sraw: "sraw",
	Mul: "mul",
	Mulh: "mulh",
	Mulhsu: "mulhsu",
	Mulhu: "mulhu",
	Div: "div",
	Divu: "divu",
	Rem: "rem",
	Remu: "remu",
	Mulw: "mulw",
	Divw: "divw",
	Divuw: "divuw",
	Remw: "remw",
	Remuw: "remuw",
	Csrrw: "csrrw",
	Csrrs: "csrrs",
	Csrrc: "csrrc",
	Csrrwi: "csrrwi",
	Csrrsi: "csrrsi",
	Csrrci: "csrrci",
	LrW: "lr.w",
	ScW: "sc.w",
	AmoswapW: "amoswap.w",
	AmoaddW: "amoadd.w",
	AmoxorW: "amoxor.w",
	AmoandW: "amoand.w",
	AmoorW: "amoor.w",
	AmominW: "amomin.w",
	AmomaxW: "amomax.w",
	AmominuW: "amominu.w",
	AmomaxuW: "amomaxu.w",
	LrD: "lr.d",
	ScD: "sc.d",
	AmoswapD: "amoswap.d",
	AmoaddD: "amoadd.d",
	AmoxorD: "amoxor.d",
	AmoandD: "amoand.d",
	AmoorD: "amoor.d",
	AmominD: "amomin.d",
	AmomaxD: "amomax.d",
	AmominuD: "amominu.d",
	AmomaxuD: "amomaxu.d",
	Flw: "flw",
	Fsw: "fsw",
	FmaddS: "fmadds",
	FmsubS: "fmsubs",
	FnmsubS: "fnmsubs",
	FnmaddS: "fnmadds",
	FaddS: "fadds",
	FsubS: "fsubs",
	FmulS: "fmuls",
	FdivS: "fdivs",
	FsqrtS: "fsqrts",
	FsgnjS: "fsgnjs",
	FsgnjnS: "fsgnjns",
	FsgnjxS: "fsgnjxs",
	FminS: "fmins",
	FmaxS: "fmaxs",
	FcvtWS: "fcvt.w.s",
	FcvtWuS: "fcvt.wu.s",
	FmvXW: "fmv.x.w",
	FeqS: "feqs",
	FltS: "flts",
	FleS: "fles",
	FclassS: "fclasss",
	FcvtSW: "fcvt.s.w",
	FcvtSWu: "fcvt.s.wu",
	FmvWX: "fmv.w.x",
	FcvtLS: "fcvt.l.s",
	FcvtLuS: "fcvt.lu.s",
	FcvtSL: "fcvt.s.l",
	FcvtSLu: "fcvt.s.lu",
	Fld: "fld",
	Fsd: "fsd",
	FmaddD: "fmaddd",
	FmsubD: "fmsubd",
	FnmsubD: "fnmsubd",
	FnmaddD: "fnmaddd",
	FaddD: "faddd",
	FsubD: "fsubd",
	FmulD: "fmuld",
	FdivD: "fdivd",
	FsqrtD: "fsqrtd",
	FsgnjD: "fsgnjd",
	FsgnjnD: "fsgnjnd",
	FsgnjxD: "fsgnjxd",
	FminD: "fmind",
	FmaxD: "fmaxd",
	FcvtSD: "fcvt.s.d",
	FcvtDS: "fcvt.d.s",
	FeqD: "feqd",
	FltD: "fltd",
	FleD: "fled",
	FclassD: "fclassd",
	FcvtWD: "fcvt.w.d",
	FcvtWuD: "fcvt.wu.d",
	FcvtDW: "fcvt.d.w",
	FcvtDWu: "fcvt.d.wu",
	FcvtLD: "fcvt.l.d",
	FcvtLuD: "fcvt.lu.d",
	FmvXD: "fmv.x.d",
	FcvtDL: "fcvt.d.l",
	FcvtDLu: "fcvt.d.lu",
	FmvDX: "fmv.d.x",
	Flq: "flq",
	Fsq: "fsq",
	FmaddQ: "fmaddq",
	FmsubQ: "fmsubq",
	FnmsubQ: "fnmsubq",
	FnmaddQ: "fnmaddq",
	FaddQ: "faddq",
	FsubQ: "fsubq",
	FmulQ: "fmulq",
	FdivQ: "fdivq",
	FsqrtQ: "fsqrtq",
	FsgnjQ: "fsgnjq",
	FsgnjnQ: "fsgnjnq",
	FsgnjxQ: "fsgnjxq",
	FminQ: "fminq",
	FmaxQ: "fmaxq",
	FcvtSQ: "fcvt.s.q",
	FcvtQS: "fcvt.q.s",
	FcvtDQ: "fcvt.d.q",
	FcvtQD: "fcvt.q.d",
	FeqQ: "feqq",
	FltQ: "fltq",
	FleQ: "fleq",
	FclassQ: "fclassq",
	FcvtWQ: "fcvt.w.q",
	FcvtWuQ: "fcvt.wu.q",
	FcvtQW: "fcvt.q.w",
	FcvtQWu: "fcvt.q.wu",
	FcvtLQ: "fcvt.l.q",
	FcvtLuQ: "fcvt.lu.q",
	FcvtQL: "fcvt.q.l",
	FcvtQLu: "fcvt.q.lu",
	Mret: "mret",
	Sret: "sret",
	Uret: "uret",
	Dret: "dret",
	Hret: "hret",
	Wfi: "wfi",
	SfenceVma: "sfencevma",
	SfenceVm: "sfencevm",
	CAddi4spn: "c.addi4spn",
	CLw: "c.lw",
	CSw: "c.sw",
	CLd: "c.ld",
	CSd: "c.sd",
	CNop: "c.nop",
	CAddi: "c.addi",
	CJalC: "c.jal",
	CAddiw: "c.addiw",
	CLi: "c.li",
	CAddi16sp: "c.addi16sp",
	CLui: "c.lui",
	CSrli: "c.srli",
	CSrai: "c.srai",
	CAndi: "c.andi",
	CSub: "c.sub",
	CXor: "c.xor",
	COr: "c.or",
	CAnd: "c.and",
	CSubw: "c.subw",
	CAddw: "c.addw",
	CJ: "c.j",
	CBeqz: "c.beqz",
	CBnez: "c.bnez",
	CSlli: "c.slli",
	CLwsp: "c.lwsp",
	CLdsp: "c.ldsp",
	CJr: "c.jr",
	CMv: "c.mv",
	CEbreak: "c.ebreak",
	CJalr: "c.jalr",
	CAdd: "c.add",
	CSwsp: "c.swsp",
	CSdsp: "c.sdsp",}
