package profiles

// Expected feature values and per-cipher weights, estimated from labeled
// ciphertext corpora. Regenerating them requires re-running the corpus
// estimation; the values themselves are frozen so rankings stay stable
// across releases.

// featureVariance holds the per-feature normalization constants used by
// the classifier distance. Order matches stats.FeatureNames.
var featureVariance = [NumFeatures]float64{
	0.0298, 50561.0761, 187.4303, 292.6228, 383.3269, 69.4891, 2.4830, 287.9880, 115.1362, 0.0041, 0.0783,
}

var builtin = map[string]Profile{
	"6x6bifid": {
		Mean:   [NumFeatures]float64{1.2574, 1373.9135, 70.3081, 28.0733, 27.5507, 7.6333, 50.1015, -367.6480, 101.0425, 4.4613, 0.1750},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"6x6playfair": {
		Mean:   [NumFeatures]float64{1.5135, 1692.0724, 83.8554, 55.6107, 56.8243, 12.0333, 50.0192, -388.4406, 107.6827, 4.2787, 0.3833},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"Autokey": {
		Mean:   [NumFeatures]float64{1.0463, 1127.1645, 69.1887, 20.8301, 21.0107, 16.0750, 50.1358, -388.3818, 100.9602, 4.6241, 0.0917},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"Bazeries": {
		Mean:   [NumFeatures]float64{1.7146, 1835.1521, 93.3360, 49.6813, 49.5522, 5.0667, 50.1470, -394.1067, 76.8761, 4.1125, 0.3583},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"Beaufort": {
		Mean:   [NumFeatures]float64{1.0857, 1740.1629, 70.5678, 23.6223, 27.7151, 9.6667, 48.0717, -392.1240, 102.9501, 4.5936, 0.1000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"CONDI": {
		Mean:   [NumFeatures]float64{0.9992, 1077.4004, 63.3578, 25.5239, 25.7220, 7.8417, 50.0481, -389.1723, 113.8381, 4.6584, 0.0333},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"Grandpre": {
		Mean:   [NumFeatures]float64{2.6783, 2806.6084, 121.5790, 120.0475, 166.9992, 7.4417, 48.5399, -365.9408, 37.9840, 3.2926, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 0.50, 1.00, 0.75, 0.00},
	},
	"Grandpre10x10": {
		Mean:   [NumFeatures]float64{2.6756, 2796.4593, 122.0171, 120.5619, 167.9242, 7.6417, 48.5743, -364.4729, 38.4019, 3.2936, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 0.50, 1.00, 0.75, 0.00},
	},
	"Gromark": {
		Mean:   [NumFeatures]float64{1.0546, 1151.1874, 56.4594, 16.5932, 16.8662, 3.2917, 49.9837, -390.4631, 93.8480, 4.6179, 0.1333},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"NihilistSub6x6": {
		Mean:   [NumFeatures]float64{2.9103, 4662.5512, 169.2668, 143.0688, 199.0460, 24.0000, 45.8095, -371.3111, 39.8921, 3.2247, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 0.50, 1.00, 0.75, 0.00},
	},
	"Patristocrat": {
		Mean:   [NumFeatures]float64{1.7424, 1881.7902, 90.1468, 90.3567, 91.6388, 21.8333, 50.0661, -390.7753, 105.7694, 4.0961, 0.2500},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"Quagmire I": {
		Mean:   [NumFeatures]float64{1.0945, 1754.5612, 70.8065, 23.9830, 28.4389, 9.8250, 48.0523, -390.6840, 102.3568, 4.5879, 0.0833},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"Quagmire II": {
		Mean:   [NumFeatures]float64{1.0887, 1756.7890, 70.5870, 24.1156, 27.6028, 11.1000, 48.2465, -390.0820, 101.5569, 4.5941, 0.1417},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"Quagmire III": {
		Mean:   [NumFeatures]float64{1.0987, 1757.7450, 69.8803, 24.3877, 28.5416, 11.4917, 48.1981, -391.3526, 102.8235, 4.5846, 0.1667},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"Quagmire IV": {
		Mean:   [NumFeatures]float64{1.0937, 1741.2024, 70.2912, 24.8290, 29.3422, 12.4250, 48.0890, -392.6739, 101.3090, 4.5915, 0.1083},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"Slidefair": {
		Mean:   [NumFeatures]float64{1.0637, 1605.0784, 63.9677, 20.4507, 29.6504, 8.1583, 47.3989, -389.4491, 99.5499, 4.6119, 0.1333},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"Swagman": {
		Mean:   [NumFeatures]float64{1.7203, 1837.1058, 92.6995, 53.2254, 52.4344, 6.0083, 50.1496, -283.9464, 77.6790, 4.1098, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"Variant": {
		Mean:   [NumFeatures]float64{1.0938, 1757.8159, 70.1631, 24.5521, 28.6556, 11.1500, 47.9288, -391.3583, 103.5958, 4.5887, 0.1583},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"Vigenere": {
		Mean:   [NumFeatures]float64{1.0911, 1745.9671, 69.3758, 24.0143, 28.2017, 11.3833, 48.2506, -392.3038, 101.0292, 4.5916, 0.0833},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"amsco": {
		Mean:   [NumFeatures]float64{1.7303, 1841.7206, 88.6816, 49.6347, 53.1711, 5.1417, 50.1348, -265.1052, 76.1691, 4.1044, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"bifid": {
		Mean:   [NumFeatures]float64{1.1975, 1388.4471, 64.9701, 25.6445, 26.4065, 9.1917, 49.8977, -363.1706, 92.7024, 4.4930, 0.0917},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"cadenus": {
		Mean:   [NumFeatures]float64{1.7450, 1860.1145, 93.5454, 50.7478, 50.9726, 5.1250, 50.1265, -282.5435, 74.8979, 4.0985, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"checkerboard": {
		Mean:   [NumFeatures]float64{4.2563, 4368.2875, 203.2080, 324.1715, 326.3369, 36.6167, 49.9141, -355.0068, 65.6254, 2.9108, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 0.50, 1.00, 0.75, 0.00},
	},
	"cmBifid": {
		Mean:   [NumFeatures]float64{1.2075, 1398.2939, 66.8842, 26.7094, 27.7975, 6.7917, 49.9797, -362.8364, 93.3406, 4.4872, 0.0917},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"columnar": {
		Mean:   [NumFeatures]float64{1.7356, 1845.3229, 94.0445, 47.9320, 48.3437, 4.4500, 50.1869, -283.2210, 71.7068, 4.1018, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"compressocrat": {
		Mean:   [NumFeatures]float64{1.5002, 1593.4401, 77.6771, 63.7944, 63.2014, 16.2417, 50.2363, -393.6805, 103.1936, 4.2375, 0.2417},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"digrafid": {
		Mean:   [NumFeatures]float64{1.1897, 1405.6960, 67.3966, 26.7254, 28.1104, 12.8083, 49.8892, -362.2672, 95.1855, 4.4984, 0.0833},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"foursquare": {
		Mean:   [NumFeatures]float64{1.2037, 1427.0323, 66.9591, 40.9396, 88.0367, 16.8833, 44.0128, -376.3114, 106.9013, 4.4902, 0.1083},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"fractionatedMorse": {
		Mean:   [NumFeatures]float64{1.4911, 1584.8357, 75.9722, 63.5269, 63.4897, 18.3500, 50.1502, -392.4811, 102.3390, 4.2422, 0.1917},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"grille": {
		Mean:   [NumFeatures]float64{1.7288, 1841.6082, 84.5889, 44.2257, 44.3437, 3.9833, 50.1098, -280.0978, 69.5738, 4.1104, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"homophonic": {
		Mean:   [NumFeatures]float64{2.5580, 2633.9828, 115.0697, 99.7641, 106.1774, 7.2167, 49.6959, -365.1230, 29.2076, 3.3612, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 0.50, 1.00, 0.75, 0.00},
	},
	"keyphrase": {
		Mean:   [NumFeatures]float64{2.6008, 2756.1793, 126.3618, 143.0857, 142.0650, 18.0083, 50.0068, -383.7055, 75.9732, 3.5453, 0.3333},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"monomeDinome": {
		Mean:   [NumFeatures]float64{4.3670, 4469.0718, 203.4784, 335.1336, 338.5111, 35.7417, 49.9105, -360.8445, 64.1619, 2.8879, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 0.50, 1.00, 0.75, 0.00},
	},
	"morbit": {
		Mean:   [NumFeatures]float64{3.4737, 3559.1315, 161.4289, 255.4212, 254.8554, 30.9750, 50.0025, -330.9657, 61.3965, 2.9482, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 0.50, 1.00, 0.75, 0.00},
	},
	"myszkowski": {
		Mean:   [NumFeatures]float64{1.7301, 1842.3184, 94.9866, 50.4397, 49.8016, 4.9833, 50.1692, -283.3335, 76.6257, 4.1008, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"nicodemus": {
		Mean:   [NumFeatures]float64{1.0876, 1199.0433, 72.9061, 19.0189, 18.9763, 3.6167, 49.8917, -392.0189, 95.9365, 4.5941, 0.1333},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"nihilistSub": {
		Mean:   [NumFeatures]float64{3.8235, 5374.1450, 201.5637, 235.2709, 299.7968, 24.6750, 46.5083, -358.1120, 33.1936, 2.9045, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 0.50, 1.00, 0.75, 0.00},
	},
	"nihilistTramp": {
		Mean:   [NumFeatures]float64{1.7449, 1844.3903, 90.6812, 45.5108, 45.5475, 3.9750, 50.1500, -282.8186, 67.5629, 4.0994, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"numberedKey": {
		Mean:   [NumFeatures]float64{2.6374, 2777.8708, 128.6124, 143.3581, 143.1096, 20.1250, 50.1113, -399.5489, 73.2190, 3.5238, 0.3333},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"periodicGromark": {
		Mean:   [NumFeatures]float64{1.0533, 1150.5363, 56.3972, 16.6545, 16.7742, 3.3167, 50.0654, -391.3836, 93.6044, 4.6211, 0.1417},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"phillips": {
		Mean:   [NumFeatures]float64{1.1693, 1274.8292, 62.5989, 26.7698, 27.3040, 6.8250, 49.8079, -383.4746, 96.4829, 4.5130, 0.1417},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"playfair": {
		Mean:   [NumFeatures]float64{1.3089, 1450.9773, 68.3342, 44.6773, 86.9874, 15.8167, 48.0408, -380.8494, 102.2592, 4.4169, 0.2000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"pollux": {
		Mean:   [NumFeatures]float64{2.6072, 2645.1417, 117.6099, 115.2594, 115.2016, 6.6750, 50.0300, -365.0984, 35.7505, 3.3157, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 0.50, 1.00, 0.75, 0.00},
	},
	"porta": {
		Mean:   [NumFeatures]float64{1.0867, 1739.0997, 70.5671, 23.5552, 27.9635, 10.4500, 48.4681, -390.6668, 101.4230, 4.5952, 0.1500},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"portax": {
		Mean:   [NumFeatures]float64{1.0526, 1597.5424, 64.0150, 20.0944, 29.4299, 8.0333, 47.6004, -388.3055, 99.7440, 4.6193, 0.1083},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"progressiveKey": {
		Mean:   [NumFeatures]float64{0.9987, 1094.3573, 55.0926, 14.9006, 15.0951, 3.5250, 50.0144, -389.8332, 96.6676, 4.6592, 0.0333},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"ragbaby": {
		Mean:   [NumFeatures]float64{0.9997, 1345.4971, 61.1713, 16.8113, 19.3035, 8.0000, 48.6597, -391.0621, 97.4985, 4.6602, 0.0333},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"redefence": {
		Mean:   [NumFeatures]float64{1.7283, 1838.2377, 88.5136, 47.4617, 47.8072, 5.6667, 50.1189, -284.3647, 71.5406, 4.1048, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"routeTramp": {
		Mean:   [NumFeatures]float64{1.7313, 1842.7030, 92.7963, 46.1717, 46.0988, 4.2917, 50.0727, -282.1301, 71.4258, 4.1009, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"runningKey": {
		Mean:   [NumFeatures]float64{1.0326, 1110.1634, 56.5897, 16.2486, 16.2149, 3.5583, 50.1711, -387.6721, 95.2201, 4.6342, 0.0417},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"sequenceTramp": {
		Mean:   [NumFeatures]float64{1.7309, 1831.4650, 91.3347, 46.5423, 46.8474, 4.1750, 50.0281, -283.0468, 71.5672, 4.1081, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"seriatedPlayfair": {
		Mean:   [NumFeatures]float64{1.0448, 1118.8768, 61.0521, 16.5535, 17.8931, 3.4000, 49.8990, -378.9815, 89.6905, 4.6028, 0.0750},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"simplesubstitution": {
		Mean:   [NumFeatures]float64{1.7415, 1879.0669, 89.5279, 90.1935, 89.9568, 20.1750, 50.0113, -392.7546, 106.1233, 4.0985, 0.3750},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"syllabary": {
		Mean:   [NumFeatures]float64{2.6924, 2910.8075, 133.3924, 128.2221, 187.7694, 17.7583, 48.1019, -366.3459, 48.2406, 3.2813, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 0.50, 1.00, 0.75, 0.00},
	},
	"tridigital": {
		Mean:   [NumFeatures]float64{4.1445, 4302.3942, 189.8782, 291.8723, 290.7374, 21.7167, 50.0795, -368.8030, 45.2445, 2.8532, 0.0000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 0.50, 1.00, 0.75, 0.00},
	},
	"trifid": {
		Mean:   [NumFeatures]float64{1.0952, 1182.4967, 61.1697, 19.3755, 19.4696, 8.5583, 50.1217, -381.5230, 96.9454, 4.5899, 0.0417},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"trisquare": {
		Mean:   [NumFeatures]float64{1.1915, 1417.1107, 67.1939, 39.5097, 85.3754, 16.0917, 43.9625, -380.2317, 108.4145, 4.4965, 0.1917},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
	"twosquare": {
		Mean:   [NumFeatures]float64{1.1967, 1452.4316, 67.4363, 40.6068, 87.5727, 19.1000, 43.1938, -381.3081, 109.1671, 4.4938, 0.2000},
		Weight: [NumFeatures]float64{1.00, 1.00, 1.00, 1.00, 1.00, 0.25, 1.00, 1.00, 1.00, 0.75, 0.50},
	},
}
