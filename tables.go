package fixed

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/samber/lo"
)

const (
	quarterSineRes = 2                         // the quarter-sine table has a resolution of 2^-quarterSineRes degrees
	quarterSineLen = 90<<quarterSineRes + 1    // number of entries in the quarter-sine table
	cordicIters    = FracBits + 2              // number of CORDIC iterations, one table entry each
	interpBits     = FracBits - quarterSineRes // fractional bits of an angle below the table resolution
)

var (
	Pi = MustNewConst(math.Pi).Fixed() // 3.141602
	E  = MustNewConst(math.E).Fixed()  // 2.71875
)

// quarterSineConsts[k] is sin(k / 2^quarterSineRes) for an angle in degrees.
var quarterSineConsts = []float64{
	0.0, 0.004363309284746571, 0.008726535498373935, 0.013089595571344441,               // 0°
	0.01745240643728351, 0.02181488503456112, 0.026176948307873153, 0.03053851320982266, // 1°
	0.03489949670250097, 0.03925981575906861, 0.043619387365336, 0.04797812852134394,    // 2°
	0.052335956242943835, 0.05669278756337751, 0.06104853953485687, 0.06540312923014306, // 3°
	0.0697564737441253, 0.07410849019539924, 0.07845909572784494, 0.08280820751220434,   // 4°
	0.08715574274765817, 0.09150161866340238, 0.09584575252022398, 0.10018806161207629,  // 5°
	0.10452846326765347, 0.10886687485196457, 0.11320321376790672, 0.11753739745783764,  // 6°
	0.12186934340514748, 0.12619896913582976, 0.13052619222005157, 0.134850930273723,    // 7°
	0.13917310096006544, 0.14349262199117932, 0.14780941112961063, 0.1521233861899167,   // 8°
	0.15643446504023087, 0.1607425656038261, 0.16504760586067765, 0.16934950384902459,   // 9°
	0.17364817766693033, 0.17794354547384175, 0.18223552549214747, 0.18652403600873463,  // 10°
	0.1908089953765448, 0.19509032201612825, 0.1993679344171972, 0.2036417511401775,     // 11°
	0.20791169081775934, 0.21217767215644626, 0.21643961393810288, 0.2206974350215011,   // 12°
	0.224951054343865, 0.22920039092241415, 0.2334453638559054, 0.2376858923261731,      // 13°
	0.24192189559966773, 0.24615329302899305, 0.25038000405444144, 0.2546019482055276,   // 14°
	0.25881904510252074, 0.2630312144579748, 0.26723837607825685, 0.27144044986507426,   // 15°
	0.27563735581699916, 0.2798290140309921, 0.28401534470392265, 0.28819626813408933,   // 16°
	0.29237170472273677, 0.29654157497557093, 0.3007057995042731, 0.30486429902801077,   // 17°
	0.3090169943749474, 0.31316380648374953, 0.31730465640509214, 0.3214394653031616,    // 18°
	0.3255681544571567, 0.3296906452627873, 0.3338068592337709, 0.33791671800332695,     // 19°
	0.3420201433256687, 0.34611705707749296, 0.35020738125946743, 0.35429103799771583,   // 20°
	0.35836794954530027, 0.36243803828370164, 0.3665012267242973, 0.3705574375098362,    // 21°
	0.374606593415912, 0.37864861735243294, 0.3826834323650898, 0.3867109616368206,      // 22°
	0.39073112848927377, 0.39474385638426723, 0.3987490689252462, 0.40274668985873724,   // 23°
	0.4067366430758002, 0.41071885261347724, 0.414693242656239, 0.4186597375374281,      // 24°
	0.42261826174069944, 0.4265687399014583, 0.43051109680829514, 0.4344452574044171,    // 25°
	0.4383711467890774, 0.4422886902190013, 0.44619781310980877, 0.45009844103743496,    // 26°
	0.45399049973954675, 0.45787391511695674, 0.4617486132350339, 0.4656145203251114,    // 27°
	0.4694715627858908, 0.4733196671848434, 0.4771587602596084, 0.48098876891938763,     // 28°
	0.48480962024633706, 0.4886212414969549, 0.49242356010346716, 0.4962165036752082,    // 29°
	0.49999999999999994, 0.5037739770455263, 0.5075383629607041, 0.5112930860770522,     // 30°
	0.5150380749100542, 0.5187732581605214, 0.5224985647159488, 0.5262139236518696,      // 31°
	0.5299192642332049, 0.5336145159156115, 0.5372996083468239, 0.5409744713679939,      // 32°
	0.5446390350150271, 0.5482932295199138, 0.5519369853120581, 0.5555702330196022,      // 33°
	0.5591929034707469, 0.5628049276950685, 0.5664062369248328, 0.569996762596303,       // 34°
	0.573576436351046, 0.5771451900372336, 0.5807029557109398, 0.5842496656374344,       // 35°
	0.5877852522924731, 0.5913096483635824, 0.5948227867513413, 0.598324600570659,       // 36°
	0.6018150231520483, 0.6052939880428944, 0.6087614290087207, 0.6122172800344493,      // 37°
	0.6156614753256583, 0.619093949309834, 0.6225146366376195, 0.6259234721840591,       // 38°
	0.6293203910498374, 0.632705328562516, 0.636078220277764, 0.6394390019805848,        // 39°
	0.6427876096865393, 0.6461239796429639, 0.6494480483301837, 0.6527597524627224,      // 40°
	0.6560590289905073, 0.6593458151000688, 0.6626200482157375, 0.6658816660008342,      // 41°
	0.6691306063588582, 0.672366807434668, 0.6755902076156602, 0.6788007455329417,       // 42°
	0.6819983600624985, 0.6851829903263591, 0.6883545756937539, 0.6915130557822694,      // 43°
	0.6946583704589973, 0.6977904598416802, 0.7009092642998509, 0.7040147244559684,      // 44°
	0.7071067811865475, 0.7101853756232854, 0.7132504491541816, 0.7163019434246543,      // 45°
	0.7193398003386511, 0.7223639620597555, 0.7253743710122876, 0.7283709698824002,      // 46°
	0.7313537016191705, 0.7343225094356856, 0.7372773368101241, 0.740218127486832,       // 47°
	0.7431448254773942, 0.7460573750616994, 0.7489557207890021, 0.7518398074789774,      // 48°
	0.754709580222772, 0.7575649843840496, 0.7604059656000309, 0.7632324697825289,       // 49°
	0.766044443118978, 0.7688418320734596, 0.77162458338772, 0.7743926440821856,         // 50°
	0.7771459614569709, 0.7798844830928817, 0.7826081568524139, 0.785316930880745,       // 51°
	0.788010753606722, 0.7906895737438433, 0.7933533402912352, 0.796002002534622,        // 52°
	0.7986355100472928, 0.8012538126910607, 0.8038568606172173, 0.8064446042674825,      // 53°
	0.8090169943749475, 0.8115739819650123, 0.8141155183563192, 0.8166415551616789,      // 54°
	0.8191520442889918, 0.8216469379421636, 0.8241261886220157, 0.8265897491271886,      // 55°
	0.8290375725550417, 0.8314696123025452, 0.8338858220671682, 0.8362861558477594,      // 56°
	0.838670567945424, 0.8410390129643924, 0.8433914458128857, 0.8457278217039732,       // 57°
	0.848048096156426, 0.8503522249955628, 0.8526401643540922, 0.8549118706729465,       // 58°
	0.8571673007021123, 0.8594064115014527, 0.8616291604415257, 0.8638355052043957,      // 59°
	0.8660254037844386, 0.8681988144891423, 0.8703556959398997, 0.8724960070727971,      // 60°
	0.8746197071393957, 0.8767267557075078, 0.8788171126619654, 0.8808907382053855,      // 61°
	0.8829475928589269, 0.8849876374630418, 0.8870108331782217, 0.8890171414857364,      // 62°
	0.8910065241883678, 0.8929789434111369, 0.8949343616020251, 0.8968727415326884,      // 63°
	0.898794046299167, 0.9006982393225879, 0.9025852843498605, 0.904455145454368,        // 64°
	0.9063077870366499, 0.9081431738250813, 0.9099612708765432, 0.9117620435770886,      // 65°
	0.9135454576426009, 0.9153114791194471, 0.917060074385124, 0.9187912101488982,       // 66°
	0.9205048534524404, 0.9222009716704518, 0.9238795325112867, 0.9255405040175664,      // 67°
	0.9271838545667874, 0.9288095528719242, 0.9304175679820246, 0.9320078692827984,      // 68°
	0.9335804264972017, 0.9351352096860117, 0.9366721892483976, 0.9381913359224842,      // 69°
	0.9396926207859083, 0.9411760152563706, 0.9426414910921784, 0.9440890203927842,      // 70°
	0.9455185755993167, 0.9469301294951056, 0.9483236552061993, 0.949699126201877,       // 71°
	0.9510565162951535, 0.9523957996432784, 0.9537169507482269, 0.9550199444571866,      // 72°
	0.9563047559630354, 0.9575713608048144, 0.958819734868193, 0.9600498543859287,       // 73°
	0.9612616959383189, 0.9624552364536473, 0.963630453208623, 0.964787323828813,        // 74°
	0.9659258262890683, 0.9670459389139431, 0.9681476403781077, 0.9692309097067544,      // 75°
	0.9702957262759965, 0.9713420698132614, 0.9723699203976766, 0.9733792584604485,      // 76°
	0.9743700647852352, 0.9753423205085127, 0.9762960071199334, 0.9772311064626789,      // 77°
	0.9781476007338056, 0.9790454724845838, 0.9799247046208296, 0.9807852804032304,      // 78°
	0.981627183447664, 0.9824503977255098, 0.9832549075639546, 0.9840406976462909,       // 79°
	0.984807753012208, 0.9855560590580777, 0.9862856015372314, 0.9869963665602319,       // 80°
	0.9876883405951378, 0.9883615104677607, 0.9890158633619168, 0.9896513868196702,      // 81°
	0.9902680687415704, 0.9908658973868822, 0.9914448613738104, 0.992004949679715,       // 82°
	0.992546151641322, 0.9930684569549263, 0.9935718556765875, 0.9940563382223196,       // 83°
	0.9945218953682733, 0.9949685182509117, 0.9953961983671787, 0.9958049275746618,      // 84°
	0.9961946980917455, 0.9965655024977614, 0.996917333733128, 0.9972501850994857,       // 85°
	0.9975640502598242, 0.9978589232386035, 0.9981347984218669, 0.9983916705573488,      // 86°
	0.9986295347545738, 0.9988483864849507, 0.9990482215818578, 0.9992290362407229,      // 87°
	0.9993908270190958, 0.9995335908367129, 0.9996573249755573, 0.9997620270799091,      // 88°
	0.9998476951563913, 0.999914327574007, 0.9999619230641713, 0.9999904807207345,       // 89°
	1.0,                                                                                 // 90°
}

// cordicAngleConsts[i] is atan(2^-i) in degrees.
var cordicAngleConsts = []float64{
	45.0,                 // atan(2^-0)
	26.56505117707799,    // atan(2^-1)
	14.036243467926479,   // atan(2^-2)
	7.125016348901798,    // atan(2^-3)
	3.576334374997351,    // atan(2^-4)
	1.7899106082460694,   // atan(2^-5)
	0.8951737102110744,   // atan(2^-6)
	0.4476141708605531,   // atan(2^-7)
	0.22381050036853808,  // atan(2^-8)
	0.1119056770662069,   // atan(2^-9)
	0.055952891893803675, // atan(2^-10)
	0.027976452617003676, // atan(2^-11)
}

// invFactConsts[k] is 1/k!.
var invFactConsts = []float64{
	1,                   // 1/0!
	1,                   // 1/1!
	1.0 / 2,             // 1/2!
	1.0 / 6,             // 1/3!
	1.0 / 24,            // 1/4!
	1.0 / 120,           // 1/5!
	1.0 / 720,           // 1/6!
	1.0 / 5_040,         // 1/7!
	1.0 / 40_320,        // 1/8!
	1.0 / 362_880,       // 1/9!
	1.0 / 3_628_800,     // 1/10!
	1.0 / 39_916_800,    // 1/11!
	1.0 / 479_001_600,   // 1/12!
	1.0 / 6_227_020_800, // 1/13!
}

// tables holds the constants used by the transcendental functions.
// It is built once, on first use, and never modified afterwards.
type tables struct {
	quarterSine []Fixed // narrowed quarterSineConsts
	cordic      []Fixed // narrowed cordicAngleConsts
	invFact     []Const // invFactConsts, not narrowed, the Taylor series runs at 32 fractional bits
	ln2Const    Const   // ln(2) at 32 fractional bits
	ln2         Fixed   // ln(2)
	log10of2    Fixed   // log10(2)
}

// tab returns the constant tables, building them on the first call.
// Concurrent first calls are safe, all of them observe the same tables.
var tab = sync.OnceValue(newTables)

func newTables() *tables {
	if err := checkLayout(); err != nil {
		panic(fmt.Sprintf("newTables() failed: %v", err))
	}
	narrow := func(v float64, _ int) Fixed {
		return MustNewConst(v).Fixed()
	}
	ln2 := MustNewConst(math.Ln2)
	return &tables{
		quarterSine: lo.Map(quarterSineConsts, narrow),
		cordic:      lo.Map(cordicAngleConsts, narrow),
		invFact: lo.Map(invFactConsts, func(v float64, _ int) Const {
			return MustNewConst(v)
		}),
		ln2Const: ln2,
		ln2:      ln2.Fixed(),
		log10of2: MustNewConst(math.Ln2 / math.Ln10).Fixed(),
	}
}

var errInvalidLayout = errors.New("invalid fixed-point layout")

// checkLayout verifies that the bit layout and the authored tables
// are consistent with each other.
func checkLayout() error {
	switch {
	case FracBits < 8:
		return fmt.Errorf("at least 8 fractional bits required, got %v: %w", FracBits, errInvalidLayout)
	case IntBits < 10:
		return fmt.Errorf("at least 10 integer bits required, got %v: %w", IntBits, errInvalidLayout)
	case FracBits%2 != 0:
		return fmt.Errorf("even number of fractional bits required, got %v: %w", FracBits, errInvalidLayout)
	case quarterSineRes >= FracBits:
		return fmt.Errorf("quarter-sine resolution 2^-%v is finer than the fixed-point resolution: %w", quarterSineRes, errInvalidLayout)
	case len(quarterSineConsts) != quarterSineLen:
		return fmt.Errorf("quarter-sine table must have %v entries, got %v: %w", quarterSineLen, len(quarterSineConsts), errInvalidLayout)
	case len(cordicAngleConsts) != cordicIters:
		return fmt.Errorf("CORDIC table must have %v entries, got %v: %w", cordicIters, len(cordicAngleConsts), errInvalidLayout)
	case len(invFactConsts) < 3:
		return fmt.Errorf("inverse factorial table must have at least 3 entries, got %v: %w", len(invFactConsts), errInvalidLayout)
	}
	return nil
}

// QuarterSine returns a copy of the quarter-sine table.
// Entry k is the sine of k/4 degrees, k ranges from 0 to 360.
func QuarterSine() []Fixed {
	return slices.Clone(tab().quarterSine)
}

// CordicAngles returns a copy of the CORDIC angle table.
// Entry i is atan(2^-i) in degrees.
func CordicAngles() []Fixed {
	return slices.Clone(tab().cordic)
}

// InvFactorials returns a copy of the inverse factorial table.
// Entry k is 1/k!.
func InvFactorials() []Const {
	return slices.Clone(tab().invFact)
}
